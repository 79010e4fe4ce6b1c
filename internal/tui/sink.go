package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmcdonald/gitsigns/internal/ports"
)

// Sink implements ports.RenderSink with terminal popups. Each Open starts
// its own bubbletea program; the returned handle closes it.
type Sink struct {
	// Title is rendered above every popup body.
	Title string
}

// NewSink creates a popup render sink.
func NewSink(title string) *Sink {
	return &Sink{Title: title}
}

// window is the opaque handle Open hands back.
type window struct {
	program *tea.Program
	done    chan error
}

// Open displays lines in a popup window and returns its handle. The popup
// runs until the user dismisses it or Close is called on the handle.
func (s *Sink) Open(lines []string, layout ports.PreviewLayout) (ports.Window, error) {
	p := tea.NewProgram(NewModel(s.Title, lines, layout))
	w := &window{program: p, done: make(chan error, 1)}
	go func() {
		_, err := p.Run()
		w.done <- err
	}()
	return w, nil
}

// Close dismisses a popup previously opened by this sink and waits for its
// program to finish.
func (s *Sink) Close(h ports.Window) error {
	w, ok := h.(*window)
	if !ok {
		return nil
	}
	w.program.Quit()
	return <-w.done
}

// Wait blocks until the popup is dismissed by the user.
func (s *Sink) Wait(h ports.Window) error {
	w, ok := h.(*window)
	if !ok {
		return nil
	}
	return <-w.done
}

// Compile-time check that Sink implements ports.RenderSink.
var _ ports.RenderSink = (*Sink)(nil)
