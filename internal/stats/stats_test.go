package stats

import (
	"testing"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/model"
)

func snap(done ...bool) *model.Snapshot {
	items := make([]model.Item, 0, len(done))
	for _, d := range done {
		items = append(items, model.Item{ID: uuid.New(), Text: "t", Completed: d})
	}
	return model.NewSnapshot(items)
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name string
		in   *model.Snapshot
		want Stats
	}{
		{"empty", model.Empty(), Stats{}},
		{"nil", nil, Stats{}},
		{"all done", snap(true), Stats{Total: 1, Completed: 1, Pending: 0, CompletionRate: 100}},
		{"one of three", snap(true, false, false), Stats{Total: 3, Completed: 1, Pending: 2, CompletionRate: 33}},
		{"two of three", snap(true, true, false), Stats{Total: 3, Completed: 2, Pending: 1, CompletionRate: 67}},
		{"half", snap(true, false), Stats{Total: 2, Completed: 1, Pending: 1, CompletionRate: 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compute(tc.in); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCache_SameReferenceDoesNotRecompute(t *testing.T) {
	var c Cache
	s := snap(true, false)

	first := c.Stats(s)
	second := c.Stats(s)
	if first != second {
		t.Fatalf("expected identical results")
	}
	if c.Recomputations() != 1 {
		t.Fatalf("expected 1 recomputation, got %d", c.Recomputations())
	}
}

func TestCache_DistinctReferencesRecompute(t *testing.T) {
	var c Cache
	items := []model.Item{{ID: uuid.New(), Text: "a"}}
	a := model.NewSnapshot(items)
	b := model.NewSnapshot(items)

	c.Stats(a)
	c.Stats(b)
	if c.Recomputations() != 2 {
		t.Fatalf("expected deeply equal snapshots to recompute, got %d", c.Recomputations())
	}
	c.Stats(a)
	if c.Recomputations() != 3 {
		t.Fatalf("expected switching back to recompute, got %d", c.Recomputations())
	}
}

func TestCache_EmptyFirstCall(t *testing.T) {
	var c Cache
	if got := c.Stats(nil); got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
	if c.Recomputations() != 1 {
		t.Fatalf("expected first call to compute, got %d", c.Recomputations())
	}
	c.Observe(nil)
	if c.Recomputations() != 1 {
		t.Fatalf("expected nil to be cached too, got %d", c.Recomputations())
	}
}
