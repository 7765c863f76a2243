package solve

import (
	"context"
	"fmt"

	"github.com/naeemahmed/doodlesolve/internal/core"
)

// Solver produces step-by-step solutions in Markdown with LaTeX math.
// Two shapes are supported: Solve takes interpreted text (two-stage
// pipeline), SolveDrawing takes the raw image and returns transcription
// and solution from one call (combined pipeline). LaTeX is passed
// through unvalidated; rendering is a presentation concern.
type Solver struct {
	vision core.VisionModel
}

func NewSolver(vision core.VisionModel) *Solver {
	return &Solver{vision: vision}
}

func (s *Solver) Solve(ctx context.Context, equation string) (string, error) {
	record, err := s.vision.Generate(ctx, solvePromptPrefix+equation, nil, solveSchema)
	if err != nil {
		return "", fmt.Errorf("solve equation: %w", err)
	}
	return record[fieldSolution], nil
}

func (s *Solver) SolveDrawing(ctx context.Context, img core.Image) (interpreted, solution string, err error) {
	record, err := s.vision.Generate(ctx, combinedPrompt, &img, combinedSchema)
	if err != nil {
		return "", "", fmt.Errorf("solve drawing: %w", err)
	}
	return record[fieldInterpreted], record[fieldSolution], nil
}
