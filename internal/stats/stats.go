package stats

import (
	"math"

	"github.com/idilsaglam/todohooks/internal/model"
)

// Stats summarizes a snapshot.
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"` // percent, 0..100
}

// Compute derives Stats from snap. An empty list has a rate of 0.
func Compute(snap *model.Snapshot) Stats {
	var st Stats
	for _, it := range snap.Items() {
		if it.Completed {
			st.Completed++
		}
	}
	st.Total = snap.Len()
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.CompletionRate = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}

// Cache memoizes Compute by snapshot identity. Snapshots are immutable, so
// a pointer that was seen before cannot carry different items.
type Cache struct {
	last       *model.Snapshot
	value      Stats
	primed     bool
	recomputes int
}

// Stats returns the cached value for snap, recomputing only when snap is a
// different pointer from the one seen last.
func (c *Cache) Stats(snap *model.Snapshot) Stats {
	if c.primed && snap == c.last {
		return c.value
	}
	c.value = Compute(snap)
	c.last = snap
	c.primed = true
	c.recomputes++
	return c.value
}

// Observe has the store.Listener signature so a Cache can subscribe to a
// store and refresh eagerly.
func (c *Cache) Observe(snap *model.Snapshot) { c.Stats(snap) }

// Recomputations reports how many times Compute actually ran.
func (c *Cache) Recomputations() int { return c.recomputes }
