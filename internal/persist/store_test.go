package persist

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListRuns(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	runs := []*Run{
		{ID: "run-1", Movie: "Up", Model: "m", Status: "ok", ReviewJSON: `{"title":"Up"}`, CreatedAt: base},
		{ID: "run-2", Movie: "Alien", Model: "m", Status: "failed", ErrorText: "boom", CreatedAt: base.Add(time.Minute)},
	}
	for _, run := range runs {
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("save %s: %v", run.ID, err)
		}
	}

	got, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	// Newest first.
	if got[0].ID != "run-2" || got[1].ID != "run-1" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Status != "failed" || got[0].ErrorText != "boom" {
		t.Fatalf("failed run not preserved: %+v", got[0])
	}
	if got[1].ReviewJSON != `{"title":"Up"}` {
		t.Fatalf("review json not preserved: %q", got[1].ReviewJSON)
	}
}

func TestListRunsHonorsLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		run := &Run{ID: id, Movie: "M", Model: "m", Status: "ok", CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := store.ListRuns(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
}

func TestListRunsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	got, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no runs, got %d", len(got))
	}
}
