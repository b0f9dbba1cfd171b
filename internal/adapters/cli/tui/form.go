package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// FormResult holds the values collected by the run form
type FormResult struct {
	APIKey    string
	URLs      string
	Submitted bool
}

// formField identifies which input currently has focus
type formField int

const (
	fieldAPIKey formField = iota
	fieldURLs
)

// FormModel is the bubbletea model collecting the API key and URL list.
// The key is captured into run-scoped memory only and never echoed.
type FormModel struct {
	keyInput  textinput.Model
	urlsInput textarea.Model
	focus     formField
	askKey    bool
	submitted bool
	cancelled bool
}

// NewFormModel creates the run form. When askKey is false the key was already
// supplied on the command line and only the URL list is collected.
func NewFormModel(askKey bool) FormModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "Google API key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'

	urlsInput := textarea.New()
	urlsInput.Placeholder = "https://www.youtube.com/watch?v=...\nhttps://youtu.be/..."
	urlsInput.SetHeight(6)
	urlsInput.SetWidth(72)

	m := FormModel{
		keyInput:  keyInput,
		urlsInput: urlsInput,
		askKey:    askKey,
	}
	if askKey {
		m.focus = fieldAPIKey
		m.keyInput.Focus()
	} else {
		m.focus = fieldURLs
		m.urlsInput.Focus()
	}
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "shift+tab":
			if m.askKey {
				m = m.toggleFocus()
			}
			return m, nil
		case "enter":
			// Enter moves on from the key field; the textarea needs it
			// for line breaks, so submission is ctrl+s there.
			if m.focus == fieldAPIKey {
				m = m.toggleFocus()
				return m, nil
			}
		case "ctrl+s":
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldAPIKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case fieldURLs:
		m.urlsInput, cmd = m.urlsInput.Update(msg)
	}
	return m, cmd
}

func (m FormModel) toggleFocus() FormModel {
	if m.focus == fieldAPIKey {
		m.focus = fieldURLs
		m.keyInput.Blur()
		m.urlsInput.Focus()
	} else {
		m.focus = fieldAPIKey
		m.urlsInput.Blur()
		m.keyInput.Focus()
	}
	return m
}

func (m FormModel) View() string {
	s := titleStyle.Render("YouTube Lifestyle Coach") + "\n\n"

	if m.askKey {
		s += labelStyle.Render("Google API key:") + "\n"
		s += m.keyInput.View() + "\n\n"
	}

	s += labelStyle.Render("YouTube URLs (one per line):") + "\n"
	s += m.urlsInput.View() + "\n\n"

	hint := "(ctrl+s to analyze, esc to cancel)"
	if m.askKey {
		hint = "(tab to switch fields, ctrl+s to analyze, esc to cancel)"
	}
	s += hintStyle.Render(hint) + "\n"
	return s
}

// Result returns the collected values
func (m FormModel) Result() FormResult {
	return FormResult{
		APIKey:    m.keyInput.Value(),
		URLs:      m.urlsInput.Value(),
		Submitted: m.submitted && !m.cancelled,
	}
}

// RunForm displays the form and returns the collected input
func RunForm(askKey bool) (FormResult, error) {
	p := tea.NewProgram(NewFormModel(askKey))

	finalModel, err := p.Run()
	if err != nil {
		return FormResult{}, fmt.Errorf("form failed: %w", err)
	}

	return finalModel.(FormModel).Result(), nil
}
