package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// windowTitle is the terminal window title. Terminals cannot report their
// title, so the value we last wrote (or the configured one) stands in.
//
// While the program runs, the renderer owns the terminal: titles are queued
// and handed to it as a tea.Cmd. Outside that window they are written
// directly.
type windowTitle struct {
	out     *termenv.Output
	title   string
	running bool
	dirty   bool
}

func newWindowTitle(w io.Writer, initial string) *windowTitle {
	return &windowTitle{out: termenv.NewOutput(w), title: initial}
}

func (w *windowTitle) Title() string { return w.title }

func (w *windowTitle) SetTitle(title string) {
	w.title = title
	if w.running {
		w.dirty = true
		return
	}
	w.out.SetWindowTitle(title)
}

// attach hands title writes to the program until the returned func runs.
func (w *windowTitle) attach() (detach func()) {
	w.running = true
	return func() {
		w.running = false
		w.dirty = false
	}
}

// cmd returns the queued title write, if any.
func (w *windowTitle) cmd() tea.Cmd {
	if w == nil || !w.dirty {
		return nil
	}
	w.dirty = false
	return tea.SetWindowTitle(w.title)
}

// themeMarker is the class list the view reads its theme from.
type themeMarker struct {
	classes map[string]bool
}

func newThemeMarker() *themeMarker { return &themeMarker{classes: map[string]bool{}} }

func (t *themeMarker) HasClass(name string) bool { return t.classes[name] }
func (t *themeMarker) AddClass(name string)      { t.classes[name] = true }
func (t *themeMarker) RemoveClass(name string)   { delete(t.classes, name) }

// inputFocus lets the synchronizer focus the text input.
type inputFocus struct {
	ti *textinput.Model
}

func (f inputFocus) Focus() { f.ti.Focus() }

// listScroller defers the scroll until the list view has the new items.
type listScroller struct {
	pending bool
}

func (s *listScroller) ScrollToEnd() { s.pending = true }
