package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/model"
)

var (
	ErrEmptyText   = errors.New("empty text")
	ErrUnknownID   = errors.New("unknown id")
	ErrDuplicateID = errors.New("duplicate id")
	ErrMissingID   = errors.New("missing id")
)

// Validate reports why Apply would absorb action as a no-op, or nil when the
// action would produce a new snapshot. It does not change Apply's behavior;
// it only lets callers surface the reason.
func Validate(current *model.Snapshot, action Action) error {
	switch a := action.(type) {
	case Add:
		if strings.TrimSpace(a.Text) == "" {
			return fmt.Errorf("add: %w", ErrEmptyText)
		}
		if a.ID == uuid.Nil {
			return fmt.Errorf("add: %w", ErrMissingID)
		}
		if current.Contains(a.ID) {
			return fmt.Errorf("add %s: %w", a.ID, ErrDuplicateID)
		}
	case Toggle:
		if !current.Contains(a.ID) {
			return fmt.Errorf("toggle %s: %w", a.ID, ErrUnknownID)
		}
	case Delete:
		if !current.Contains(a.ID) {
			return fmt.Errorf("delete %s: %w", a.ID, ErrUnknownID)
		}
	default:
		return fmt.Errorf("unsupported action %T", action)
	}
	return nil
}
