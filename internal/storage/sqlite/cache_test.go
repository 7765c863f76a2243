package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

func newTestRepo(t *testing.T) *SolutionsRepo {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewSolutionsRepo(db)
}

func TestSolutionsRepo_GetMissing(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	_, ok, err := repo.Get(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown hash")
	}
}

func TestSolutionsRepo_PutGet(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	want := core.Solution{Interpreted: "x + 2 = 5", Answer: "x = 3"}
	if err := repo.Put(ctx, "abc123", want); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := repo.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSolutionsRepo_PutOverwrites(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "abc123", core.Solution{Interpreted: "x = 1", Answer: "old"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	want := core.Solution{Interpreted: "x = 1", Answer: "new"}
	if err := repo.Put(ctx, "abc123", want); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, ok, err := repo.Get(ctx, "abc123")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
