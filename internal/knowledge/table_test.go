package knowledge

import (
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

func testTable() *Table {
	return New([]core.KnowledgeEntry{
		{Trigger: "hi", Answer: "answer-hi"},
		{Trigger: "hello", Answer: "answer-hello"},
		{Trigger: "who made you", Answer: "answer-made"},
		{Trigger: "who created you", Answer: "answer-created"},
	})
}

func TestLookup(t *testing.T) {
	table := testTable()

	tests := []struct {
		name    string
		message string
		want    string
		found   bool
	}{
		{
			name:    "exact match",
			message: "hello",
			want:    "answer-hello",
			found:   true,
		},
		{
			name:    "exact match after normalization",
			message: "  HELLO  ",
			want:    "answer-hello",
			found:   true,
		},
		{
			name:    "message contains trigger, first entry wins",
			message: "hi there",
			want:    "answer-hi",
			found:   true,
		},
		{
			name:    "overlapping triggers resolve in declaration order",
			message: "tell me who made you please",
			want:    "answer-made",
			found:   true,
		},
		{
			name:    "trigger contains message",
			message: "who made",
			want:    "answer-made",
			found:   true,
		},
		{
			name:    "no match",
			message: "tell me about quantum computing",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.message)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.message, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestLookupSubstringPrecedence(t *testing.T) {
	// When a message matches several triggers the earlier entry must win
	// regardless of specificity.
	table := New([]core.KnowledgeEntry{
		{Trigger: "hi", Answer: "A"},
		{Trigger: "hello", Answer: "B"},
	})

	got, ok := table.Lookup("hello, hi there")
	if !ok || got != "A" {
		t.Errorf("Lookup(%q) = %q, %v; want first-declared entry %q", "hello, hi there", got, ok, "A")
	}
}

func TestPartialLookup(t *testing.T) {
	table := testTable()

	if got, ok := table.PartialLookup("well hello friend"); !ok || got != "answer-hello" {
		t.Errorf("PartialLookup = %q, %v; want %q, true", got, ok, "answer-hello")
	}

	// Reverse containment is deliberately not checked on the degraded path.
	if _, ok := table.PartialLookup("who made"); ok {
		t.Error("PartialLookup matched trigger-contains-message, want miss")
	}

	if _, ok := table.PartialLookup("quantum computing"); ok {
		t.Error("PartialLookup matched unrelated message, want miss")
	}
}

func TestDefaultTableCoversCreatorQuestions(t *testing.T) {
	table := Default()
	for _, msg := range []string{"hi", "who made you", "what is your purpose"} {
		if _, ok := table.Lookup(msg); !ok {
			t.Errorf("default table has no entry for %q", msg)
		}
	}
}
