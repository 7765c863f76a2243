package core

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	AppName          = "DoodleSolve"
	AppVersion       = "0.1.0"
	AppRepositoryURL = "https://github.com/naeemahmed/doodlesolve"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat conversation. History is kept only for
// the lifetime of an interactive session and is never sent back to the
// model: every remote call is a single stateless turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// KnowledgeEntry maps a canonical trigger phrase to a canned answer.
type KnowledgeEntry struct {
	Trigger string
	Answer  string
}

// Image is a self-describing reference to a user drawing. The core never
// inspects pixel content, only forwards the bytes.
type Image struct {
	MIME string
	Data []byte
}

// IsSupportedImageMIME reports whether the vision model accepts the
// given content type.
func IsSupportedImageMIME(mime string) bool {
	switch mime {
	case "image/png", "image/jpeg", "image/webp", "image/heic", "image/heif":
		return true
	}
	return false
}

// DataURI encodes the image as "data:<mime>;base64,<data>", the format
// the vision model receives.
func (i Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIME, base64.StdEncoding.EncodeToString(i.Data))
}

// ParseDataURI splits a data URI back into an Image.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, fmt.Errorf("not a data uri")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("data uri has no payload")
	}
	mime, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return Image{}, fmt.Errorf("data uri is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode data uri payload: %w", err)
	}
	return Image{MIME: mime, Data: data}, nil
}

// Interpretation is the transcription the vision model produced for a
// drawing. Text may carry the no-problem sentinel, see service/solve.
type Interpretation struct {
	Text string
}

// Solution is the single output contract of the solve pipeline. Exactly
// one of the two shapes is populated: Interpreted+Answer on success, Err
// otherwise. Consumers must branch on Err before reading the rest.
type Solution struct {
	Interpreted string `json:"interpretedEquation,omitempty"`
	Answer      string `json:"solutionLaTeX,omitempty"`
	Err         string `json:"error,omitempty"`
}

// Failed reports whether the pipeline ended in the error shape.
func (s Solution) Failed() bool {
	return s.Err != ""
}

// Errorf builds the error shape of a Solution.
func Errorf(format string, args ...any) Solution {
	return Solution{Err: fmt.Sprintf(format, args...)}
}
