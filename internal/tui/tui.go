package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/effects"
	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/model"
	"github.com/idilsaglam/todohooks/internal/page"
	"github.com/idilsaglam/todohooks/internal/store"
	"github.com/idilsaglam/todohooks/internal/ui"
)

// Options configure the interactive page.
type Options struct {
	Username string
	AppTitle string // window title restored on exit
	Dark     bool
	Group    bool // pending items first
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Text }

// itemDelegate renders single-line rows in the view's current theme.
type itemDelegate struct {
	theme func() ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	th := d.theme()
	prefix := "  "
	if index == m.Index() {
		prefix = th.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.ItemLine(th, index+1, it.item))
}

type modelTUI struct {
	page   *page.Page
	title  *windowTitle          // nil when titles go elsewhere
	marker effects.MarkerSurface // theme source
	list   *list.Model
	input  *textinput.Model
	scroll *listScroller
	keys   keyMap
	group  bool

	status string // last rejection, shown under the input
	width  int
}

func newModel(p *page.Page, group bool, title *windowTitle, marker effects.MarkerSurface) modelTUI {
	keys := newKeyMap()
	theme := func() ui.Theme { return ui.ForMode(marker.HasClass(effects.DarkModeClass)) }

	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.Title = "Todos"
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings
	// q is a valid character in todo text; esc and ctrl+c quit instead.
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a new todo..."
	ti.CharLimit = 200

	m := modelTUI{
		page:   p,
		title:  title,
		marker: marker,
		list:   &l,
		input:  &ti,
		scroll: &listScroller{},
		keys:   keys,
		group:  group,
		width:  80,
	}
	sync := p.Synchronizer()
	sync.RegisterInput(inputFocus{ti: m.input})
	sync.RegisterScroller(m.scroll)
	m.input.Focus()
	m.syncList()
	return m
}

// Run mounts a page, runs the program and unmounts on every exit path.
func Run(opt Options) error {
	title := newWindowTitle(os.Stdout, opt.AppTitle)
	marker := newThemeMarker()
	sync := effects.New(title, marker)
	p := page.New(sync, page.Options{Username: opt.Username, Dark: opt.Dark})

	return sync.Within(func() error {
		p.Mount()
		defer p.Unmount()

		m := newModel(p, opt.Group, title, marker)
		defer title.attach()()

		prog := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := prog.Run(); err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})
}

// Init, Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if tc := m.title.cmd(); tc != nil {
		cmd = tea.Batch(cmd, tc)
	}
	return next, cmd
}

func (m modelTUI) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width-4, listHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit) && m.list.FilterState() != list.Filtering:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.page.ToggleMode()
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		}

		if m.input.Focused() {
			return m.updateInput(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				m.apply(m.page.Toggle, m.selectedID())
				return m, nil
			case key.Matches(msg, m.keys.Delete):
				m.apply(m.page.Delete, m.selectedID())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	*m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Add) {
		changed, err := m.page.Add(m.input.Value())
		if err != nil {
			m.status = statusFor(err)
			return m, nil
		}
		if changed {
			m.status = ""
			m.input.SetValue("")
			m.syncList()
		}
		return m, nil
	}
	var cmd tea.Cmd
	*m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *modelTUI) apply(fn func(uuid.UUID) (bool, error), id uuid.UUID) {
	if _, err := fn(id); err != nil {
		m.status = statusFor(err)
		return
	}
	m.status = ""
	m.syncList()
}

func (m modelTUI) selectedID() uuid.UUID {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return uuid.Nil
	}
	return it.item.ID
}

// syncList copies the current snapshot into the list view.
func (m *modelTUI) syncList() {
	items := m.page.Snapshot().Items()
	if m.group {
		items = groupItems(items)
	}
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	m.list.SetItems(li)
	if m.scroll.pending {
		m.scroll.pending = false
		m.selectNewest(items)
	}
}

// selectNewest selects the most recently added item wherever the view
// placed it.
func (m *modelTUI) selectNewest(items []model.Item) {
	snap := m.page.Snapshot()
	newest, ok := snap.At(snap.Len() - 1)
	if !ok {
		return
	}
	for i, it := range items {
		if it.ID == newest.ID {
			m.list.Select(i)
			return
		}
	}
}

func (m modelTUI) theme() ui.Theme {
	return ui.ForMode(m.marker.HasClass(effects.DarkModeClass))
}

func groupItems(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !it.Completed {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if it.Completed {
			out = append(out, it)
		}
	}
	return out
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyText):
		return "Text cannot be empty"
	case errors.Is(err, store.ErrUnknownID):
		return "Nothing selected"
	default:
		log.Warn().Err(err).Msg("tui: action rejected")
		return err.Error()
	}
}

func (m modelTUI) View() string {
	renders := m.page.Rendered()
	th := m.theme()
	st := m.page.Stats()
	ctx := m.page.Context()

	inputTitle := "Add todo"
	if m.status != "" {
		inputTitle += ": " + th.Error.Render(m.status)
	}
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		Render(inputTitle + "\n" + m.input.View())

	var b strings.Builder
	b.WriteString(th.Title.Render("Hooks demo · page router"))
	b.WriteString(th.Muted.Render(fmt.Sprintf("   renders: %d", renders)))
	b.WriteString("\n\n")
	b.WriteString(inputBox)
	b.WriteString("\n")
	b.WriteString(ui.Header(th, st))
	b.WriteString("\n")
	if m.page.Snapshot().Len() == 0 {
		b.WriteString(th.Muted.Render("no todos yet, add one"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	side := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel(th, ui.Section(th, "Stats", ui.StatsLines(th, st))),
		" ",
		ui.Panel(th, ui.Section(th, "Context", ui.UserLines(th, ctx))),
	)
	b.WriteString(side)
	return ui.Panel(th, []string{b.String()})
}

func listHeight(h int) int {
	// input box, header, stats panels and the outer frame
	const chrome = 16
	if h-chrome < 5 {
		return 5
	}
	return h - chrome
}
