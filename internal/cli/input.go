package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptPassword asks for a secret without echoing it.
func promptPassword(prompt string) (string, error) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 20
	ti.Prompt = ""
	ti.EchoMode = textinput.EchoPassword
	ti.TextStyle = inputStyle

	p := tea.NewProgram(inputModel{textInput: ti, prompt: prompt})
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	finalModel := m.(inputModel)
	if finalModel.quitted {
		return "", fmt.Errorf("input cancelled")
	}
	return finalModel.textInput.Value(), nil
}

type inputModel struct {
	textInput textinput.Model
	prompt    string
	quitted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitted = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return promptStyle.Render(m.prompt) + "\n\n" +
		m.textInput.View() + "\n\n" +
		hintStyle.Render("(esc to cancel)") + "\n"
}
