package core

import "context"

// ChatModel is the fast, low-latency text completion provider. A call is
// one stateless turn: system instruction plus a single user message.
type ChatModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// VisionModel is the multimodal provider. The response shape is declared
// by the caller through a Schema; implementations must reject payloads
// that do not satisfy it. img may be nil for text-only prompts.
type VisionModel interface {
	Generate(ctx context.Context, prompt string, img *Image, schema Schema) (Record, error)
}

// Schema declares the string fields a structured model response must
// carry.
type Schema struct {
	Fields []SchemaField
}

type SchemaField struct {
	Name        string
	Description string
	Required    bool
}

// Required returns the names of the required fields in declaration order.
func (s Schema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Record is a schema-validated structured response. A Record only exists
// past the decode boundary; raw payloads are never handed to callers.
type Record map[string]string
