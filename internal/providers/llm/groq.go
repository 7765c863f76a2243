package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

const groqBaseURL = "https://api.groq.com/openai"

// Groq is the low-latency chat completion adapter. The wire format is
// OpenAI-compatible.
type Groq struct {
	baseProvider
	temperature float64
	maxTokens   int
}

func NewGroq(apiKey, model string, temperature float64, maxTokens int) *Groq {
	return &Groq{
		baseProvider: newBaseProvider(groqBaseURL, apiKey, model),
		temperature:  temperature,
		maxTokens:    maxTokens,
	}
}

func (g *Groq) Complete(ctx context.Context, system, user string) (string, error) {
	payload := map[string]any{
		"model": g.model,
		"messages": []core.Message{
			{Role: core.RoleSystem, Content: system},
			{Role: core.RoleUser, Content: user},
		},
		"temperature": g.temperature,
		"max_tokens":  g.maxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + g.apiKey,
	}

	data, err := g.postJSON(ctx, "/v1/chat/completions", payload, headers)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("%w: decode: %v", core.ErrMalformedResponse, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices: %s", core.ErrMalformedResponse, string(data))
	}

	// An empty content string is a valid (if useless) completion; the
	// responder substitutes its fixed apology.
	return result.Choices[0].Message.Content, nil
}
