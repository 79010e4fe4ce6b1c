// Package tui renders preview popups in the terminal with bubbletea. It is
// one implementation of the render-sink boundary: it accepts finished text
// lines plus layout hints and owns nothing about how they were produced.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcdonald/gitsigns/internal/ports"
)

// Key bindings
type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "enter", "ctrl+c"),
		key.WithHelp("q", "close"),
	),
}

// Model is the popup model: a titled, bordered window over pre-rendered
// lines with scrolling.
type Model struct {
	title  string
	lines  []string
	layout ports.PreviewLayout
	scroll int
	width  int
	height int
}

// NewModel creates a popup over the given lines.
func NewModel(title string, lines []string, layout ports.PreviewLayout) Model {
	return Model{title: title, lines: lines, layout: layout}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.scroll > 0 {
				m.scroll--
			}
		case key.Matches(msg, keys.Down):
			if m.scroll < len(m.lines)-1 {
				m.scroll++
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	height := m.layout.Height
	if height == 0 || height > len(m.lines) {
		height = len(m.lines)
	}
	end := m.scroll + height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	body := strings.Join(m.lines[m.scroll:end], "\n")

	if m.layout.Width > 0 {
		body = lipgloss.NewStyle().MaxWidth(m.layout.Width).Render(body)
	}
	body = highlightStyle(m.layout.Highlight).Render(body)

	view := titleStyle.Render(m.title) + "\n" + popupStyle.Render(body)
	view += helpStyle.Render("\n" + keys.Up.Help().Key + "/" + keys.Down.Help().Key + " scroll · q close")
	if m.layout.Row > 0 || m.layout.Col > 0 {
		view = lipgloss.NewStyle().MarginTop(m.layout.Row).MarginLeft(m.layout.Col).Render(view)
	}
	return view
}

// Run shows a popup and blocks until it is dismissed.
func Run(title string, lines []string, layout ports.PreviewLayout) error {
	p := tea.NewProgram(NewModel(title, lines, layout))
	_, err := p.Run()
	return err
}
