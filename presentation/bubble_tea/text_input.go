package bubble_tea

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type TextInput struct {
	ti *textinput.Model
}

func NewTextInput(placeholder string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()
	return &TextInput{
		ti: &ti,
	}
}

func (m *TextInput) Value() string {
	return m.ti.Value()
}

func (m *TextInput) Reset() {
	m.ti.Reset()
}

func (m *TextInput) Focus() tea.Cmd {
	return m.ti.Focus()
}

func (m *TextInput) Blur() {
	m.ti.Blur()
}

func (m *TextInput) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*m.ti, cmd = m.ti.Update(msg)
	return cmd
}

func (m *TextInput) View() string {
	return m.ti.View()
}
