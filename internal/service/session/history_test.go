package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

func TestLogAppendAndClear(t *testing.T) {
	l := NewLog()

	l.Append("a", core.Message{Role: core.RoleUser, Content: "hi"})
	l.Append("a", core.Message{Role: core.RoleAssistant, Content: "hello"})
	l.Append("b", core.Message{Role: core.RoleUser, Content: "other session"})

	msgs := l.Messages("a")
	if len(msgs) != 2 {
		t.Fatalf("Messages(a) returned %d messages, want 2", len(msgs))
	}
	if msgs[0].Content != "hi" || msgs[1].Content != "hello" {
		t.Errorf("messages out of order: %+v", msgs)
	}

	l.Clear("a")
	if got := l.Messages("a"); len(got) != 0 {
		t.Errorf("Clear left %d messages", len(got))
	}
	if got := l.Messages("b"); len(got) != 1 {
		t.Errorf("Clear touched another session: %d messages", len(got))
	}
}

func TestLogReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append("a", core.Message{Role: core.RoleUser, Content: "original"})

	msgs := l.Messages("a")
	msgs[0].Content = "mutated"

	if got := l.Messages("a")[0].Content; got != "original" {
		t.Errorf("transcript mutated through returned slice: %q", got)
	}
}

func TestLogConcurrentAppends(t *testing.T) {
	l := NewLog()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Append("a", core.Message{Role: core.RoleUser, Content: fmt.Sprintf("msg-%d", n)})
		}(i)
	}
	wg.Wait()

	if got := len(l.Messages("a")); got != 50 {
		t.Errorf("got %d messages, want 50", got)
	}
}
