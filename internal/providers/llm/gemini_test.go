package llm

import (
	"errors"
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

var testSchema = core.Schema{
	Fields: []core.SchemaField{
		{Name: "interpretedEquation", Required: true},
		{Name: "solutionLaTeX", Required: false},
	},
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    core.Record
		wantErr bool
	}{
		{
			name: "all fields present",
			data: `{"interpretedEquation": "2 + 2", "solutionLaTeX": "$4$"}`,
			want: core.Record{"interpretedEquation": "2 + 2", "solutionLaTeX": "$4$"},
		},
		{
			name: "optional field absent",
			data: `{"interpretedEquation": "x = 1"}`,
			want: core.Record{"interpretedEquation": "x = 1"},
		},
		{
			name: "extra fields ignored",
			data: `{"interpretedEquation": "x", "confidence": "0.9"}`,
			want: core.Record{"interpretedEquation": "x"},
		},
		{
			name:    "missing required field",
			data:    `{"solutionLaTeX": "$4$"}`,
			wantErr: true,
		},
		{
			name:    "field with wrong type",
			data:    `{"interpretedEquation": 42}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			data:    `"just text"`,
			wantErr: true,
		},
		{
			name:    "truncated payload",
			data:    `{"interpretedEquation": "2 +`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRecord([]byte(tt.data), testSchema)
			if tt.wantErr {
				if !errors.Is(err, core.ErrMalformedResponse) {
					t.Fatalf("decodeRecord() error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRecord() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("decodeRecord() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("decodeRecord()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestResponseSchema(t *testing.T) {
	out := responseSchema(testSchema)

	if out["type"] != "OBJECT" {
		t.Errorf("schema type = %v, want OBJECT", out["type"])
	}
	props, ok := out["properties"].(map[string]any)
	if !ok || len(props) != 2 {
		t.Fatalf("schema properties = %v, want 2 entries", out["properties"])
	}
	required, ok := out["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "interpretedEquation" {
		t.Errorf("schema required = %v, want [interpretedEquation]", out["required"])
	}
}
