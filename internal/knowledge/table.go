package knowledge

import (
	"strings"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

// defaultEntries is the curated school knowledge. Order matters: partial
// matching walks the slice and the first hit wins, so shorter, more
// general triggers come first.
var defaultEntries = []core.KnowledgeEntry{
	{
		Trigger: "hi",
		Answer:  "# Welcome to Sylhet Technical School and College\nHello! I'm the **Sylhet Technical School and College AI assistant**. How can I assist you today?",
	},
	{
		Trigger: "hello",
		Answer:  "# Greetings\nHello! I'm the **Sylhet Technical School and College AI assistant**. How can I assist you today?",
	},
	{
		Trigger: "who made you",
		Answer:  "# About My Creator\nThis AI was created by **Naeem Ahmed** for an innovation project at **Sylhet Technical School and College**.",
	},
	{
		Trigger: "who created you",
		Answer:  "# My Origin\nThis AI was developed by **Naeem Ahmed** as part of an innovation project at **Sylhet Technical School and College**.",
	},
	{
		Trigger: "who are you",
		Answer:  "# About Me\nI'm an AI assistant for **Sylhet Technical School and College**, created by **Naeem Ahmed** for an innovation project.",
	},
	{
		Trigger: "what is your purpose",
		Answer:  "# My Purpose\nI'm designed to help students and visitors get information about **Sylhet Technical School and College**, created by **Naeem Ahmed** as an innovation project.",
	},
}

// Table is the static trigger->answer lookup. Read-only after
// construction, safe for concurrent use.
type Table struct {
	entries []core.KnowledgeEntry
	exact   map[string]string
}

func New(entries []core.KnowledgeEntry) *Table {
	exact := make(map[string]string, len(entries))
	for _, e := range entries {
		key := normalize(e.Trigger)
		if _, dup := exact[key]; !dup {
			exact[key] = e.Answer
		}
	}
	return &Table{entries: entries, exact: exact}
}

// Default returns the table built from the curated school entries.
func Default() *Table {
	return New(defaultEntries)
}

// Lookup resolves a message against the table: an exact match on the
// normalized message wins, otherwise the first entry (in declaration
// order) where message contains the trigger or the trigger contains the
// message.
func (t *Table) Lookup(message string) (string, bool) {
	msg := normalize(message)
	if answer, ok := t.exact[msg]; ok {
		return answer, true
	}
	for _, e := range t.entries {
		trigger := normalize(e.Trigger)
		if strings.Contains(msg, trigger) || strings.Contains(trigger, msg) {
			return e.Answer, true
		}
	}
	return "", false
}

// PartialLookup is the degraded fallback used when the remote chat model
// fails: only the message-contains-trigger direction is checked.
func (t *Table) PartialLookup(message string) (string, bool) {
	msg := normalize(message)
	for _, e := range t.entries {
		if strings.Contains(msg, normalize(e.Trigger)) {
			return e.Answer, true
		}
	}
	return "", false
}

// Entries exposes the table in declaration order so the chat responder
// can embed it as grounding context.
func (t *Table) Entries() []core.KnowledgeEntry {
	return t.entries
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
