package effects

import (
	"fmt"
	"sync"

	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/model"
)

// DarkModeClass is the marker applied while the page is in dark mode.
const DarkModeClass = "dark-mode"

// TitleFormat renders the document title for a list of n items.
type TitleFormat func(n int) string

// DefaultTitle is the title shown while the page is mounted.
func DefaultTitle(n int) string {
	if n == 1 {
		return "Todos (1 item)"
	}
	return fmt.Sprintf("Todos (%d items)", n)
}

// Synchronizer mirrors page state onto external surfaces. It is scoped to
// one mount: Activate captures what the surfaces looked like, Deactivate
// puts that back exactly once. Calls outside that window do nothing.
// A Synchronizer belongs to the event loop driving the page.
type Synchronizer struct {
	title  TitleSurface
	marker MarkerSurface
	format TitleFormat
	class  string

	input    Focuser
	scroller Scroller

	active   bool
	released bool
	release  sync.Once

	savedTitle  string
	savedMarker bool

	lenSynced  bool
	lastLen    int
	modeSynced bool
	alt        bool

	renders int
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithTitleFormat replaces DefaultTitle.
func WithTitleFormat(f TitleFormat) Option {
	return func(s *Synchronizer) { s.format = f }
}

// WithClass replaces DarkModeClass.
func WithClass(name string) Option {
	return func(s *Synchronizer) { s.class = name }
}

// New builds a synchronizer. Either surface may be nil, in which case writes
// to it are skipped.
func New(title TitleSurface, marker MarkerSurface, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		title:  title,
		marker: marker,
		format: DefaultTitle,
		class:  DarkModeClass,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Activate starts the mount. A second call, or a call after Deactivate,
// is ignored.
func (s *Synchronizer) Activate() {
	if s.active || s.released {
		return
	}
	if s.title != nil {
		s.savedTitle = s.title.Title()
	}
	if s.marker != nil {
		s.savedMarker = s.marker.HasClass(s.class)
	}
	s.active = true
	log.Debug().Str("title", s.savedTitle).Bool("marker", s.savedMarker).Msg("effects: activated")
}

// Deactivate restores the surfaces to their pre-mount state. Only the first
// call after Activate has any effect.
func (s *Synchronizer) Deactivate() {
	if !s.active {
		return
	}
	s.release.Do(func() {
		s.active = false
		s.released = true
		if s.title != nil {
			s.title.SetTitle(s.savedTitle)
		}
		if s.marker != nil {
			if s.savedMarker {
				s.marker.AddClass(s.class)
			} else {
				s.marker.RemoveClass(s.class)
			}
		}
		log.Debug().Msg("effects: deactivated")
	})
}

// Within runs fn inside an activated scope. Deactivate runs on every exit
// path, including a panic in fn.
func (s *Synchronizer) Within(fn func() error) error {
	s.Activate()
	defer s.Deactivate()
	return fn()
}

// Active reports whether the synchronizer is mounted.
func (s *Synchronizer) Active() bool { return s.active }

// Sync writes the title for a list of n items if n changed since the last
// write.
func (s *Synchronizer) Sync(n int) {
	if !s.active || (s.lenSynced && n == s.lastLen) {
		return
	}
	s.lenSynced = true
	s.lastLen = n
	if s.title == nil {
		return
	}
	s.title.SetTitle(s.format(n))
}

// SyncMode applies or removes the marker when the mode changed.
func (s *Synchronizer) SyncMode(alt bool) {
	if !s.active || (s.modeSynced && alt == s.alt) {
		return
	}
	s.modeSynced = true
	s.alt = alt
	if s.marker == nil {
		return
	}
	if alt {
		s.marker.AddClass(s.class)
	} else {
		s.marker.RemoveClass(s.class)
	}
}

// Observe has the store.Listener signature. It syncs the title and scrolls
// the list when it grew.
func (s *Synchronizer) Observe(snap *model.Snapshot) {
	grew := s.lenSynced && snap.Len() > s.lastLen
	s.Sync(snap.Len())
	if grew && s.active && s.scroller != nil {
		s.scroller.ScrollToEnd()
	}
}

// RegisterInput sets the element focus returns to. Passing nil clears it.
func (s *Synchronizer) RegisterInput(f Focuser) { s.input = f }

// RegisterScroller sets the list view scrolled on growth. Passing nil clears it.
func (s *Synchronizer) RegisterScroller(sc Scroller) { s.scroller = sc }

// RequestFocus focuses the registered input, if any.
func (s *Synchronizer) RequestFocus() {
	if s.input == nil {
		return
	}
	s.input.Focus()
}

// Rendered records one render pass of the owning view.
func (s *Synchronizer) Rendered() { s.renders++ }

// Renders reports how many render passes were recorded.
func (s *Synchronizer) Renders() int { return s.renders }
