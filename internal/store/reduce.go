package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/model"
)

// Apply computes the snapshot that follows current under action.
//
// Apply is pure: current is never modified, and every accepted transition
// returns a new snapshot. Actions that cannot apply (blank text, zero or
// duplicate id on add, unknown id on toggle/delete) return current itself.
func Apply(current *model.Snapshot, action Action) *model.Snapshot {
	switch a := action.(type) {
	case Add:
		return applyAdd(current, a)
	case Toggle:
		return applyToggle(current, a.ID)
	case Delete:
		return applyDelete(current, a.ID)
	default:
		return current
	}
}

func applyAdd(current *model.Snapshot, a Add) *model.Snapshot {
	text := strings.TrimSpace(a.Text)
	if text == "" || a.ID == uuid.Nil || current.Contains(a.ID) {
		return current
	}
	items := current.Items()
	items = append(items, model.Item{ID: a.ID, Text: text})
	return model.NewSnapshot(items)
}

func applyToggle(current *model.Snapshot, id uuid.UUID) *model.Snapshot {
	idx := current.Index(id)
	if idx < 0 {
		return current
	}
	items := current.Items()
	items[idx].Completed = !items[idx].Completed
	return model.NewSnapshot(items)
}

func applyDelete(current *model.Snapshot, id uuid.UUID) *model.Snapshot {
	idx := current.Index(id)
	if idx < 0 {
		return current
	}
	items := current.Items()
	items = append(items[:idx], items[idx+1:]...)
	return model.NewSnapshot(items)
}
