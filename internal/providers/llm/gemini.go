package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini is the multimodal adapter. Responses are constrained to JSON via
// responseSchema and validated against the caller's core.Schema before
// anything is returned.
type Gemini struct {
	baseProvider
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		baseProvider: newBaseProvider(geminiBaseURL, apiKey, model),
	}
}

func (g *Gemini) Generate(ctx context.Context, prompt string, img *core.Image, schema core.Schema) (core.Record, error) {
	parts := []map[string]any{
		{"text": prompt},
	}
	if img != nil {
		parts = append(parts, map[string]any{
			"inline_data": map[string]any{
				"mime_type": img.MIME,
				"data":      base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"response_mime_type": "application/json",
			"response_schema":    responseSchema(schema),
		},
	}

	headers := map[string]string{
		"x-goog-api-key": g.apiKey,
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", g.model)
	data, err := g.postJSON(ctx, path, payload, headers)
	if err != nil {
		return nil, err
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", core.ErrMalformedResponse, err)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates: %s", core.ErrMalformedResponse, string(data))
	}

	var text strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return decodeRecord([]byte(text.String()), schema)
}

// responseSchema converts a core.Schema into the Gemini responseSchema
// wire format (all fields are strings).
func responseSchema(schema core.Schema) map[string]any {
	props := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		props[f.Name] = map[string]any{
			"type":        "STRING",
			"description": f.Description,
		}
	}
	out := map[string]any{
		"type":       "OBJECT",
		"properties": props,
	}
	if required := schema.Required(); len(required) > 0 {
		out["required"] = required
	}
	return out
}

// decodeRecord is the trust boundary for structured model output: the
// raw JSON either satisfies the schema and becomes a core.Record, or the
// call fails with core.ErrMalformedResponse.
func decodeRecord(data []byte, schema core.Schema) (core.Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a json object: %v", core.ErrMalformedResponse, err)
	}

	record := make(core.Record, len(schema.Fields))
	for _, f := range schema.Fields {
		val, ok := raw[f.Name]
		if !ok {
			if f.Required {
				return nil, fmt.Errorf("%w: missing required field %q", core.ErrMalformedResponse, f.Name)
			}
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return nil, fmt.Errorf("%w: field %q is not a string", core.ErrMalformedResponse, f.Name)
		}
		record[f.Name] = s
	}
	return record, nil
}
