package session

import (
	"sync"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

// Log is the in-memory per-session transcript. It exists only so
// interactive transports can show a running conversation. It is never
// sent to a model and never persisted; every remote call is a single
// stateless turn.
type Log struct {
	mu       sync.RWMutex
	sessions map[string][]core.Message
}

func NewLog() *Log {
	return &Log{sessions: make(map[string][]core.Message)}
}

func (l *Log) Append(sessionID string, msg core.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessions[sessionID] = append(l.sessions[sessionID], msg)
}

// Messages returns a copy of the transcript in chronological order.
func (l *Log) Messages(sessionID string) []core.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	msgs := l.sessions[sessionID]
	out := make([]core.Message, len(msgs))
	copy(out, msgs)
	return out
}

func (l *Log) Clear(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, sessionID)
}
