package solve

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// Pipeline is what transports see: a solve attempt in, a classified
// result out.
type Pipeline interface {
	Solve(ctx context.Context, img core.Image) core.Solution
}

// SolutionsRepository persists successful solves keyed by image hash.
type SolutionsRepository interface {
	Get(ctx context.Context, imageHash string) (core.Solution, bool, error)
	Put(ctx context.Context, imageHash string, sol core.Solution) error
}

// CachedPipeline consults the repository before paying for a remote
// call. Only successful results are cached; failures stay retryable.
type CachedPipeline struct {
	inner Pipeline
	repo  SolutionsRepository
}

func NewCachedPipeline(inner Pipeline, repo SolutionsRepository) *CachedPipeline {
	return &CachedPipeline{inner: inner, repo: repo}
}

func (c *CachedPipeline) Solve(ctx context.Context, img core.Image) core.Solution {
	logger := log.FromCtx(ctx)
	hash := Fingerprint(img)

	if cached, ok, err := c.repo.Get(ctx, hash); err != nil {
		logger.Error().Err(err).Msg("solve cache lookup failed")
	} else if ok {
		logger.Debug().Str("hash", hash).Msg("solve cache hit")
		return cached
	}

	result := c.inner.Solve(ctx, img)

	if !result.Failed() {
		if err := c.repo.Put(ctx, hash, result); err != nil {
			logger.Error().Err(err).Msg("failed to cache solution")
		}
	}
	return result
}

// Fingerprint identifies a drawing for caching: SHA-256 over MIME type
// and raw bytes.
func Fingerprint(img core.Image) string {
	h := sha256.New()
	h.Write([]byte(img.MIME))
	h.Write([]byte{0})
	h.Write(img.Data)
	return hex.EncodeToString(h.Sum(nil))
}
