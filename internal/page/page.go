// Package page composes the list store, the stats cache and the effects
// synchronizer into the unit a UI runtime mounts, drives and unmounts.
package page

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/effects"
	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/model"
	"github.com/idilsaglam/todohooks/internal/stats"
	"github.com/idilsaglam/todohooks/internal/store"
)

// Options tune a new Page.
type Options struct {
	Username string
	Dark     bool
	IDFunc   store.IDFunc // nil keeps the store default
}

// Page is the todo page state. Listeners run in a fixed order after every
// transition: stats cache first, then the synchronizer.
type Page struct {
	store    *store.Store
	cache    *stats.Cache
	sync     *effects.Synchronizer
	username string
	dark     bool
	unsubs   []func()
}

// New wires a page around sync. The page is inert until Mount.
func New(sync *effects.Synchronizer, opts Options) *Page {
	var storeOpts []store.Option
	if opts.IDFunc != nil {
		storeOpts = append(storeOpts, store.WithIDFunc(opts.IDFunc))
	}
	p := &Page{
		store:    store.New(storeOpts...),
		cache:    &stats.Cache{},
		sync:     sync,
		username: opts.Username,
		dark:     opts.Dark,
	}
	p.unsubs = append(p.unsubs,
		p.store.Subscribe(p.cache.Observe),
		p.store.Subscribe(p.sync.Observe),
	)
	return p
}

// Mount activates the synchronizer and applies the initial state.
func (p *Page) Mount() {
	p.sync.Activate()
	p.sync.Sync(p.store.Current().Len())
	p.sync.SyncMode(p.dark)
	log.Info().Str("user", p.username).Bool("dark", p.dark).Msg("page: mounted")
}

// Unmount reverts every external effect and detaches listeners. It is safe
// to call more than once.
func (p *Page) Unmount() {
	p.sync.Deactivate()
	for _, u := range p.unsubs {
		u()
	}
	p.unsubs = nil
	log.Info().Int("transitions", p.store.Transitions()).Msg("page: unmounted")
}

// Add appends text as a new item. On success focus returns to the input.
// The error explains a rejected add; the list is unchanged in that case.
func (p *Page) Add(text string) (bool, error) {
	id, err := p.store.NextID()
	if err != nil {
		log.Warn().Err(err).Msg("page: add dropped")
		return false, fmt.Errorf("add: %w", err)
	}
	add := store.Add{ID: id, Text: text}
	if _, changed := p.store.Dispatch(add); !changed {
		return false, store.Validate(p.store.Current(), add)
	}
	p.sync.RequestFocus()
	return true, nil
}

// Toggle flips the item with id.
func (p *Page) Toggle(id uuid.UUID) (bool, error) {
	return p.dispatch(store.Toggle{ID: id})
}

// Delete removes the item with id.
func (p *Page) Delete(id uuid.UUID) (bool, error) {
	return p.dispatch(store.Delete{ID: id})
}

func (p *Page) dispatch(a store.Action) (bool, error) {
	if err := store.Validate(p.store.Current(), a); err != nil {
		log.Debug().Err(err).Msg("page: action absorbed")
		return false, err
	}
	_, changed := p.store.Dispatch(a)
	return changed, nil
}

// IDAt returns the id of the item at 1-based position n, or uuid.Nil.
func (p *Page) IDAt(n int) uuid.UUID {
	it, ok := p.store.Current().At(n - 1)
	if !ok {
		return uuid.Nil
	}
	return it.ID
}

// ToggleMode switches between light and dark display.
func (p *Page) ToggleMode() { p.SetDarkMode(!p.dark) }

// SetDarkMode sets the display mode and syncs the marker.
func (p *Page) SetDarkMode(dark bool) {
	p.dark = dark
	p.sync.SyncMode(dark)
}

// DarkMode reports the current display mode.
func (p *Page) DarkMode() bool { return p.dark }

// Snapshot returns the current list.
func (p *Page) Snapshot() *model.Snapshot { return p.store.Current() }

// Stats returns the cached stats of the current list.
func (p *Page) Stats() stats.Stats { return p.cache.Stats(p.store.Current()) }

// StatsRecomputations exposes the cache counter.
func (p *Page) StatsRecomputations() int { return p.cache.Recomputations() }

// Context is what the page hands to its child views.
func (p *Page) Context() model.UserContext {
	return model.UserContext{Username: p.username, Theme: model.ThemeFor(p.dark)}
}

// Synchronizer exposes the effects scope so a runtime can register its
// input and list view.
func (p *Page) Synchronizer() *effects.Synchronizer { return p.sync }

// Rendered records one render of the page and returns the new count.
func (p *Page) Rendered() int {
	p.sync.Rendered()
	return p.sync.Renders()
}
