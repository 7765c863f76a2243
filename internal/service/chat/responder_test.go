package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/internal/knowledge"
	"github.com/stretchr/testify/assert"
)

type stubChatModel struct {
	calls      int
	lastSystem string
	lastUser   string
	reply      string
	err        error
}

func (s *stubChatModel) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testResponder(model *stubChatModel) *Responder {
	table := knowledge.New([]core.KnowledgeEntry{
		{Trigger: "hi", Answer: "answer-hi"},
		{Trigger: "hello", Answer: "answer-hello"},
		{Trigger: "who made you", Answer: "answer-made"},
	})
	return NewResponder(table, model, 0)
}

func TestRespondExactMatchSkipsRemote(t *testing.T) {
	model := &stubChatModel{reply: "should not be used"}
	r := testResponder(model)

	got := r.Respond(context.Background(), "  HELLO ")

	assert.Equal(t, "answer-hello", got)
	assert.Equal(t, 0, model.calls, "table hit must not reach the chat model")
}

func TestRespondSubstringMatchUsesTableOrder(t *testing.T) {
	model := &stubChatModel{reply: "should not be used"}
	r := testResponder(model)

	got := r.Respond(context.Background(), "hi there")

	assert.Equal(t, "answer-hi", got)
	assert.Equal(t, 0, model.calls)
}

func TestRespondMissCallsRemoteOnce(t *testing.T) {
	model := &stubChatModel{reply: "# Quantum Computing\nIt uses qubits."}
	r := testResponder(model)

	got := r.Respond(context.Background(), "tell me about quantum computing")

	assert.Equal(t, model.reply, got)
	assert.Equal(t, 1, model.calls)
	assert.Equal(t, "tell me about quantum computing", model.lastUser)
}

func TestRespondSystemPromptEmbedsTable(t *testing.T) {
	model := &stubChatModel{reply: "ok"}
	r := testResponder(model)

	r.Respond(context.Background(), "unmatched question")

	assert.Contains(t, model.lastSystem, `When asked "who made you"`)
	assert.Contains(t, model.lastSystem, "answer-made")
	assert.Contains(t, model.lastSystem, "format your response in markdown")
}

// stubTable misses on the primary lookup but hits on the degraded
// partial path, so the fallback branch can be pinned down in isolation.
type stubTable struct {
	partialAnswer  string
	lookupCalls    int
	partialCalls   int
	partialMatches bool
}

func (s *stubTable) Lookup(string) (string, bool) {
	s.lookupCalls++
	return "", false
}

func (s *stubTable) PartialLookup(string) (string, bool) {
	s.partialCalls++
	if s.partialMatches {
		return s.partialAnswer, true
	}
	return "", false
}

func (s *stubTable) Entries() []core.KnowledgeEntry {
	return []core.KnowledgeEntry{{Trigger: "hi", Answer: "answer-hi"}}
}

func TestRespondRemoteFailureFallsBackToPartialMatch(t *testing.T) {
	model := &stubChatModel{err: core.ErrRemoteUnavailable}
	table := &stubTable{partialAnswer: "answer-made", partialMatches: true}
	r := NewResponder(table, model, 0)

	got := r.Respond(context.Background(), "ok but seriously who made you and why")

	assert.Equal(t, "answer-made", got)
	assert.Equal(t, 1, model.calls)
	assert.Equal(t, 1, table.partialCalls, "degraded path must retry the table")
}

func TestRespondRemoteFailureWithoutMatchApologizes(t *testing.T) {
	model := &stubChatModel{err: core.ErrRemoteUnavailable}
	r := testResponder(model)

	got := r.Respond(context.Background(), "explain the krebs cycle")

	assert.Equal(t, msgTechnicalIssue, got)
	assert.Equal(t, 1, model.calls)
}

func TestRespondEmptyPayloadNeverReturnsEmpty(t *testing.T) {
	model := &stubChatModel{reply: ""}
	r := testResponder(model)

	got := r.Respond(context.Background(), "an unmatched question")

	assert.Equal(t, msgEmptyReply, got)
	assert.NotEmpty(t, got)
}

func TestRespondTokenBudgetGuard(t *testing.T) {
	model := &stubChatModel{reply: "should not be reached"}
	table := knowledge.New([]core.KnowledgeEntry{{Trigger: "hi", Answer: "answer-hi"}})
	r := NewResponder(table, model, 1)

	got := r.Respond(context.Background(), strings.Repeat("solve this polynomial ", 50))

	assert.Equal(t, msgTooLong, got)
	assert.Equal(t, 0, model.calls)
}
