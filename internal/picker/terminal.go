package picker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalPicker is the built-in fallback used when no launcher is
// installed: a small BubbleTea list running in the invoking terminal.
type TerminalPicker struct{}

// NewTerminalPicker creates the built-in terminal picker.
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{}
}

// Pick runs the list UI and returns the chosen entry.
func (p *TerminalPicker) Pick(ctx context.Context, prompt string, choices []string) (string, error) {
	m := buildPickModel(prompt, choices)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("terminal picker failed: %w", err)
	}

	result, ok := final.(pickModel)
	if !ok || result.cancelled || result.choice == "" {
		return "", ErrCancelled
	}
	return result.choice, nil
}

// choiceItem adapts a plain string to the bubbles list item interface.
type choiceItem string

func (i choiceItem) Title() string       { return string(i) }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return string(i) }

// pickModel is the BubbleTea model for a single prompt.
type pickModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

// buildPickModel assembles the list model for one prompt.
func buildPickModel(prompt string, choices []string) pickModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem(c)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 40, len(choices)+6)
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)

	return pickModel{list: l}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = string(item)
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	return m.list.View()
}
