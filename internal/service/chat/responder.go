package chat

import (
	"context"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

const (
	msgEmptyReply = "# Error\nI apologize, but I'm having trouble processing your request right now. Please try again."

	msgTechnicalIssue = "# Technical Issue\nI'm sorry, I'm experiencing technical difficulties right now. Please try again later or contact the school directly for assistance."

	msgTooLong = "# Message Too Long\nYour message is too long for me to process in one go. Please shorten it and try again."
)

// KnowledgeTable is the static lookup the responder consults before and
// after the remote call.
type KnowledgeTable interface {
	Lookup(message string) (string, bool)
	PartialLookup(message string) (string, bool)
	Entries() []core.KnowledgeEntry
}

// Responder answers free-text chat messages. It always resolves to a
// displayable string; no error ever reaches the caller.
type Responder struct {
	table       KnowledgeTable
	model       core.ChatModel
	tokenBudget int
}

// NewResponder wires the responder. tokenBudget caps the combined size
// of system prompt and message in tokens; 0 disables the guard.
func NewResponder(table KnowledgeTable, model core.ChatModel, tokenBudget int) *Responder {
	return &Responder{
		table:       table,
		model:       model,
		tokenBudget: tokenBudget,
	}
}

func (r *Responder) Respond(ctx context.Context, message string) string {
	logger := log.FromCtx(ctx)

	// Table hit means no remote call at all: the canned answer is
	// authoritative and free.
	if answer, ok := r.table.Lookup(message); ok {
		logger.Debug().Msg("chat answered from knowledge table")
		return answer
	}

	system := buildSystemPrompt(r.table.Entries())

	if r.tokenBudget > 0 {
		tokens := countTokens(system) + countTokens(message)
		logger.Debug().Int("tokens", tokens).Int("budget", r.tokenBudget).Msg("chat prompt size")
		if tokens > r.tokenBudget {
			return msgTooLong
		}
	}

	text, err := r.model.Complete(ctx, system, message)
	if err != nil {
		logger.Error().Err(err).Msg("chat model call failed")
		// Degraded fallback: a loose table match beats a bare apology.
		if answer, ok := r.table.PartialLookup(message); ok {
			return answer
		}
		return msgTechnicalIssue
	}

	if text == "" {
		return msgEmptyReply
	}
	return text
}
