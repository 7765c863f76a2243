package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/conv"
)

// LoadImage reads a drawing from disk and sniffs its content type.
func LoadImage(path string) (core.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Image{}, fmt.Errorf("failed to read image: %w", err)
	}

	mime := http.DetectContentType(data)
	if !core.IsSupportedImageMIME(mime) {
		return core.Image{}, fmt.Errorf("unsupported image type %q for %s", mime, path)
	}

	return core.Image{MIME: mime, Data: data}, nil
}

// MarkdownToTerminal flattens Markdown for plain terminal output.
func MarkdownToTerminal(md string) string {
	return strings.TrimSpace(conv.MarkdownToPlain([]byte(md)))
}
