package solve

import (
	"context"
	"fmt"

	"github.com/naeemahmed/doodlesolve/internal/config"
	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

const (
	msgNoProblem  = "Could not recognize an equation. Please draw more clearly."
	msgProcessing = "An error occurred during processing: %v"
)

// EquationInterpreter transcribes a drawing into text.
type EquationInterpreter interface {
	Interpret(ctx context.Context, img core.Image) (core.Interpretation, error)
}

// EquationSolver solves either interpreted text or a raw drawing.
type EquationSolver interface {
	Solve(ctx context.Context, equation string) (string, error)
	SolveDrawing(ctx context.Context, img core.Image) (interpreted, solution string, err error)
}

// strategy is one shape of the solve pipeline. Implementations may
// return errors; the orchestrator is the single point where they become
// the error shape of core.Solution.
type strategy interface {
	run(ctx context.Context, img core.Image) (core.Solution, error)
}

// Orchestrator drives a solve attempt end to end and classifies the
// outcome. Solve never returns an error and keeps no state between
// invocations: every call is an independent attempt.
type Orchestrator struct {
	strategy strategy
	variant  string
}

func NewOrchestrator(variant string, interpreter EquationInterpreter, solver EquationSolver) (*Orchestrator, error) {
	var s strategy
	switch variant {
	case config.PipelineTwoStage:
		s = &twoStage{interpreter: interpreter, solver: solver}
	case config.PipelineCombined:
		s = &combined{solver: solver}
	default:
		return nil, fmt.Errorf("unknown pipeline variant: %s", variant)
	}
	return &Orchestrator{strategy: s, variant: variant}, nil
}

func (o *Orchestrator) Solve(ctx context.Context, img core.Image) core.Solution {
	logger := log.FromCtx(ctx)

	result, err := o.strategy.run(ctx, img)
	if err != nil {
		logger.Error().Err(err).Str("variant", o.variant).Msg("solve pipeline failed")
		return core.Errorf(msgProcessing, err)
	}

	if result.Failed() {
		logger.Info().Str("variant", o.variant).Msg("no problem recognized in drawing")
	}
	return result
}

// twoStage interprets first and solves the transcription in a second
// call. The solver is never invoked when interpretation yields the
// sentinel; a second call against sentinel text would be wasted.
type twoStage struct {
	interpreter EquationInterpreter
	solver      EquationSolver
}

func (t *twoStage) run(ctx context.Context, img core.Image) (core.Solution, error) {
	interp, err := t.interpreter.Interpret(ctx, img)
	if err != nil {
		return core.Solution{}, err
	}

	if IsNoProblemSentinel(interp.Text) {
		return core.Solution{Err: msgNoProblem}, nil
	}

	solution, err := t.solver.Solve(ctx, interp.Text)
	if err != nil {
		return core.Solution{}, err
	}
	if solution == "" {
		return core.Solution{}, fmt.Errorf("%w: empty solution", core.ErrMalformedResponse)
	}

	return core.Solution{Interpreted: interp.Text, Answer: solution}, nil
}

// combined performs interpretation and solving in one remote call.
type combined struct {
	solver EquationSolver
}

func (c *combined) run(ctx context.Context, img core.Image) (core.Solution, error) {
	interpreted, solution, err := c.solver.SolveDrawing(ctx, img)
	if err != nil {
		return core.Solution{}, err
	}

	if IsNoProblemSentinel(interpreted) {
		return core.Solution{Err: msgNoProblem}, nil
	}
	if solution == "" {
		return core.Solution{}, fmt.Errorf("%w: empty solution", core.ErrMalformedResponse)
	}

	return core.Solution{Interpreted: interpreted, Answer: solution}, nil
}
