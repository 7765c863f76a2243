package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naeemahmed/doodlesolve/internal/config"
)

// VariantStep selects the solve pipeline shape
type VariantStep struct {
	choices []variantChoice
	cursor  int
}

type variantChoice struct {
	id   string
	desc string
}

func NewVariantStep() Step {
	return &VariantStep{
		choices: []variantChoice{
			{config.PipelineTwoStage, "interpret the drawing, then solve the transcription (two vision calls, inspectable intermediate)"},
			{config.PipelineCombined, "interpret and solve in a single vision call (cheaper, no intermediate)"},
		},
		cursor: 0,
	}
}

func (s *VariantStep) Init() tea.Cmd {
	return nil
}

func (s *VariantStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.PipelineVariant = s.choices[s.cursor].id
			return nil, nil
		}
	}
	return s, nil
}

func (s *VariantStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the solve pipeline:\n\n")
	for i, choice := range s.choices {
		line := fmt.Sprintf("%s: %s", choice.id, choice.desc)
		if s.cursor == i {
			b.WriteString(selStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
