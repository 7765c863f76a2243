package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// secretStep is a reusable masked-input step for API keys.
type secretStep struct {
	input  textinput.Model
	title  string
	assign func(state *InstallState, value string)
}

func newSecretStep(title, placeholder string, assign func(*InstallState, string)) *secretStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &secretStep{
		input:  ti,
		title:  title,
		assign: assign,
	}
}

func (s *secretStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *secretStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			s.assign(state, s.input.Value())
			return nil, nil
		}
	}
	return s, cmd
}

func (s *secretStep) View(state *InstallState) string {
	return fmt.Sprintf("Enter your %s:\n\n%s\n\n(press enter to confirm)\n", s.title, s.input.View())
}

// NewGroqKeyStep collects the Groq API key used for chat completions.
func NewGroqKeyStep() Step {
	return newSecretStep("Groq API Key", "gsk_...", func(state *InstallState, v string) {
		state.GroqKey = v
	})
}

// NewGeminiKeyStep collects the Gemini API key used for vision calls.
func NewGeminiKeyStep() Step {
	return newSecretStep("Gemini API Key", "AIza...", func(state *InstallState, v string) {
		state.GeminiKey = v
	})
}
