package chat

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

// countTokens counts BPE tokens with tiktoken. When the encoding cannot
// be loaded (offline environment) it falls back to a rune-based
// estimate, which is good enough for a budget guard.
func countTokens(text string) int {
	tkOnce.Do(func() {
		tk, _ = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	})
	if tk == nil {
		return len([]rune(text)) / 4
	}
	return len(tk.Encode(text, nil, nil))
}
