package effects

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/idilsaglam/todohooks/internal/model"
)

type focusCounter struct{ n int }

func (f *focusCounter) Focus() { f.n++ }

type scrollCounter struct{ n int }

func (s *scrollCounter) ScrollToEnd() { s.n++ }

func items(n int) *model.Snapshot {
	out := make([]model.Item, n)
	for i := range out {
		out[i] = model.Item{ID: uuid.New(), Text: "t"}
	}
	return model.NewSnapshot(out)
}

func TestSynchronizer_TeardownRestoresMarkerOnce(t *testing.T) {
	doc := NewDocument("Hooks demo")
	s := New(doc, doc)

	s.Activate()
	for i, alt := range []bool{true, false, true, true, false, true} {
		s.SyncMode(alt)
		if doc.HasClass(DarkModeClass) != alt {
			t.Fatalf("step %d: expected marker=%v", i, alt)
		}
	}
	before := doc.MarkerWrites

	s.Deactivate()
	s.Deactivate()

	if doc.HasClass(DarkModeClass) {
		t.Fatalf("expected marker removed after teardown")
	}
	if doc.MarkerWrites != before+1 {
		t.Fatalf("expected exactly one revert write, got %d", doc.MarkerWrites-before)
	}
}

func TestSynchronizer_TeardownKeepsPreMountMarker(t *testing.T) {
	doc := NewDocument("")
	doc.AddClass(DarkModeClass)
	s := New(doc, doc)

	s.Activate()
	s.SyncMode(false)
	if doc.HasClass(DarkModeClass) {
		t.Fatalf("expected light mode while mounted")
	}
	s.Deactivate()
	if !doc.HasClass(DarkModeClass) {
		t.Fatalf("expected pre-mount marker to be restored")
	}
}

func TestSynchronizer_SyncModeIsIdempotent(t *testing.T) {
	doc := NewDocument("")
	s := New(doc, doc)
	s.Activate()

	s.SyncMode(true)
	s.SyncMode(true)
	s.SyncMode(true)
	if doc.MarkerWrites != 1 {
		t.Fatalf("expected 1 write, got %d", doc.MarkerWrites)
	}
}

func TestSynchronizer_TitleFollowsLength(t *testing.T) {
	doc := NewDocument("Hooks demo")
	s := New(doc, doc)
	s.Activate()

	s.Sync(0)
	if doc.Title() != "Todos (0 items)" {
		t.Fatalf("unexpected title %q", doc.Title())
	}
	s.Sync(1)
	s.Sync(1)
	if doc.Title() != "Todos (1 item)" {
		t.Fatalf("unexpected title %q", doc.Title())
	}
	if doc.TitleWrites != 2 {
		t.Fatalf("expected 2 writes, got %d", doc.TitleWrites)
	}

	s.Deactivate()
	if doc.Title() != "Hooks demo" {
		t.Fatalf("expected original title restored, got %q", doc.Title())
	}
}

func TestSynchronizer_InactiveIsNoop(t *testing.T) {
	doc := NewDocument("orig")
	s := New(doc, doc)

	s.Sync(3)
	s.SyncMode(true)
	s.Deactivate()
	if doc.TitleWrites != 0 || doc.MarkerWrites != 0 {
		t.Fatalf("expected no writes before activation")
	}

	s.Activate()
	s.Deactivate()
	writes := doc.TitleWrites + doc.MarkerWrites

	s.Activate()
	s.Sync(5)
	s.SyncMode(true)
	s.Deactivate()
	if doc.TitleWrites+doc.MarkerWrites != writes {
		t.Fatalf("expected a released synchronizer to stay released")
	}
}

func TestSynchronizer_NilSurfaces(t *testing.T) {
	s := New(nil, nil)
	s.Activate()
	s.Sync(1)
	s.SyncMode(true)
	s.RequestFocus()
	s.Deactivate()
	if s.Active() {
		t.Fatalf("expected inactive after teardown")
	}
}

func TestSynchronizer_WithinReleasesOnError(t *testing.T) {
	doc := NewDocument("orig")
	s := New(doc, doc)
	boom := errors.New("boom")

	err := s.Within(func() error {
		s.Sync(2)
		s.SyncMode(true)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if doc.Title() != "orig" || doc.HasClass(DarkModeClass) {
		t.Fatalf("expected surfaces restored, title=%q", doc.Title())
	}
}

func TestSynchronizer_WithinReleasesOnPanic(t *testing.T) {
	doc := NewDocument("orig")
	s := New(doc, doc)

	func() {
		defer func() { _ = recover() }()
		_ = s.Within(func() error {
			s.SyncMode(true)
			panic("teardown")
		})
	}()
	if doc.HasClass(DarkModeClass) {
		t.Fatalf("expected marker reverted after panic")
	}
	if s.Active() {
		t.Fatalf("expected inactive after panic")
	}
}

func TestSynchronizer_FocusAndScroll(t *testing.T) {
	s := New(nil, nil)
	s.RequestFocus()

	f := &focusCounter{}
	sc := &scrollCounter{}
	s.RegisterInput(f)
	s.RegisterScroller(sc)
	s.Activate()

	s.RequestFocus()
	if f.n != 1 {
		t.Fatalf("expected 1 focus, got %d", f.n)
	}

	s.Observe(items(0))
	s.Observe(items(1))
	s.Observe(items(2))
	s.Observe(items(1))
	if sc.n != 2 {
		t.Fatalf("expected 2 scrolls on growth, got %d", sc.n)
	}

	s.RegisterInput(nil)
	s.RequestFocus()
	if f.n != 1 {
		t.Fatalf("expected unregistered input to be ignored")
	}
}

func TestSynchronizer_CustomOptions(t *testing.T) {
	doc := NewDocument("")
	s := New(doc, doc,
		WithTitleFormat(func(n int) string { return "n=" + string(rune('0'+n)) }),
		WithClass("alt"),
	)
	s.Activate()
	s.Sync(3)
	s.SyncMode(true)
	if doc.Title() != "n=3" || !doc.HasClass("alt") {
		t.Fatalf("unexpected surfaces: title=%q", doc.Title())
	}
}

func TestSynchronizer_Renders(t *testing.T) {
	s := New(nil, nil)
	for i := 0; i < 3; i++ {
		s.Rendered()
	}
	if s.Renders() != 3 {
		t.Fatalf("expected 3, got %d", s.Renders())
	}
}
