package solve

import (
	"context"
	"testing"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/stretchr/testify/assert"
)

type memRepo struct {
	store map[string]core.Solution
	gets  int
	puts  int
}

func newMemRepo() *memRepo {
	return &memRepo{store: make(map[string]core.Solution)}
}

func (m *memRepo) Get(ctx context.Context, hash string) (core.Solution, bool, error) {
	m.gets++
	sol, ok := m.store[hash]
	return sol, ok, nil
}

func (m *memRepo) Put(ctx context.Context, hash string, sol core.Solution) error {
	m.puts++
	m.store[hash] = sol
	return nil
}

type countingPipeline struct {
	calls  int
	result core.Solution
}

func (c *countingPipeline) Solve(ctx context.Context, img core.Image) core.Solution {
	c.calls++
	return c.result
}

func TestCachedPipelineHitSkipsRemote(t *testing.T) {
	inner := &countingPipeline{result: core.Solution{Interpreted: "2+2", Answer: "$4$"}}
	repo := newMemRepo()
	p := NewCachedPipeline(inner, repo)
	img := testImage()

	first := p.Solve(context.Background(), img)
	second := p.Solve(context.Background(), img)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second solve must be served from cache")
	assert.Equal(t, 1, repo.puts)
}

func TestCachedPipelineDoesNotCacheFailures(t *testing.T) {
	inner := &countingPipeline{result: core.Solution{Err: "boom"}}
	repo := newMemRepo()
	p := NewCachedPipeline(inner, repo)
	img := testImage()

	p.Solve(context.Background(), img)
	p.Solve(context.Background(), img)

	assert.Equal(t, 2, inner.calls, "failures must stay retryable")
	assert.Equal(t, 0, repo.puts)
}

func TestFingerprintDistinguishesMIME(t *testing.T) {
	a := core.Image{MIME: "image/png", Data: []byte("x")}
	b := core.Image{MIME: "image/jpeg", Data: []byte("x")}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint(a))
}
