package solve

import (
	"context"
	"fmt"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// Interpreter transcribes a drawn problem into readable text. It does
// not solve and does not classify; recovery from errors and the sentinel
// is the orchestrator's call.
type Interpreter struct {
	vision core.VisionModel
}

func NewInterpreter(vision core.VisionModel) *Interpreter {
	return &Interpreter{vision: vision}
}

func (i *Interpreter) Interpret(ctx context.Context, img core.Image) (core.Interpretation, error) {
	record, err := i.vision.Generate(ctx, interpretPrompt, &img, interpretSchema)
	if err != nil {
		return core.Interpretation{}, fmt.Errorf("interpret drawing: %w", err)
	}

	text := record[fieldInterpreted]
	log.FromCtx(ctx).Debug().Str("interpreted", text).Msg("drawing interpreted")

	return core.Interpretation{Text: text}, nil
}
