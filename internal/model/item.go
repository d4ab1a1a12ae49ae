package model

import "github.com/google/uuid"

// Item is the domain model for a todo entry.
// ID and Text never change once created; Completed flips via a toggle.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// Snapshot is the list state at one point in time. It is never mutated after
// construction, so a *Snapshot pointer doubles as a change token: a different
// pointer means a different list.
type Snapshot struct {
	items []Item
}

// Empty returns a fresh snapshot with no items.
func Empty() *Snapshot { return &Snapshot{} }

// NewSnapshot copies items into a new snapshot.
func NewSnapshot(items []Item) *Snapshot {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Snapshot{items: cp}
}

// Len is nil-safe so a zero *Snapshot behaves like an empty list.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the ordered items.
func (s *Snapshot) Items() []Item {
	if s == nil {
		return nil
	}
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the item at 0-based position i.
func (s *Snapshot) At(i int) (Item, bool) {
	if i < 0 || i >= s.Len() {
		return Item{}, false
	}
	return s.items[i], true
}

// Index returns the position of id, or -1.
func (s *Snapshot) Index(id uuid.UUID) int {
	for i := 0; i < s.Len(); i++ {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether an item with id is present.
func (s *Snapshot) Contains(id uuid.UUID) bool { return s.Index(id) >= 0 }
