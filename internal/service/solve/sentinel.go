package solve

import "strings"

// NoProblemSentinel is a wire contract with the vision model: the
// interpreter prompt instructs it to answer with exactly this phrase
// when the drawing holds no recognizable problem. Compare only through
// IsNoProblemSentinel so the literal lives in one place.
const NoProblemSentinel = "No equation found"

// IsNoProblemSentinel reports whether an interpretation means "nothing
// found": empty text, or text containing the sentinel in any casing.
func IsNoProblemSentinel(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	return strings.Contains(strings.ToLower(trimmed), strings.ToLower(NoProblemSentinel))
}
