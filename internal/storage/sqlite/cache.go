package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// SolutionsRepo stores successful solve results keyed by image hash.
type SolutionsRepo struct {
	db *sql.DB
}

func NewSolutionsRepo(db *sql.DB) *SolutionsRepo {
	return &SolutionsRepo{db: db}
}

func (r *SolutionsRepo) Get(ctx context.Context, imageHash string) (core.Solution, bool, error) {
	query := `SELECT interpreted, solution FROM solutions WHERE image_hash = ?`

	var sol core.Solution
	err := r.db.QueryRowContext(ctx, query, imageHash).Scan(&sol.Interpreted, &sol.Answer)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Solution{}, false, nil
	}
	if err != nil {
		return core.Solution{}, false, fmt.Errorf("failed to query solution: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("hash", imageHash).Msg("loaded cached solution")
	return sol, true, nil
}

func (r *SolutionsRepo) Put(ctx context.Context, imageHash string, sol core.Solution) error {
	query := `INSERT INTO solutions (image_hash, interpreted, solution) VALUES (?, ?, ?)
		ON CONFLICT(image_hash) DO UPDATE SET interpreted = excluded.interpreted, solution = excluded.solution`

	if _, err := r.db.ExecContext(ctx, query, imageHash, sol.Interpreted, sol.Answer); err != nil {
		return fmt.Errorf("failed to store solution: %w", err)
	}
	return nil
}
