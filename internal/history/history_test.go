package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return OpenAt(filepath.Join(t.TempDir(), "history.mp"))
}

func TestAppendAndList(t *testing.T) {
	s := tempStore(t)

	entries := []Entry{
		{Expression: "1 + 1", Value: 2, EvaluatedAt: time.Now().UTC()},
		{Expression: "2 * 3", Value: 6, EvaluatedAt: time.Now().UTC()},
		{Expression: "10 / 4", Value: 2.5, EvaluatedAt: time.Now().UTC()},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List: got %d entries, want 3", len(got))
	}
	for i := range got {
		if got[i].Expression != entries[i].Expression || got[i].Value != entries[i].Value {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestListLimit(t *testing.T) {
	s := tempStore(t)
	for i, expr := range []string{"1", "2", "3", "4"} {
		if err := s.Append(Entry{Expression: expr, Value: float64(i + 1)}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// Newest last: the limit keeps the tail.
	if got[0].Expression != "3" || got[1].Expression != "4" {
		t.Errorf("got %q, %q; want 3, 4", got[0].Expression, got[1].Expression)
	}
}

func TestListMissingFile(t *testing.T) {
	s := tempStore(t)

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestLoadToleratesGarbage(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List on corrupt file: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt file yielded %d entries", len(got))
	}

	// Appending over a corrupt file starts fresh instead of failing.
	if err := s.Append(Entry{Expression: "1", Value: 1}); err != nil {
		t.Fatalf("Append over corrupt file: %v", err)
	}
	got, _ = s.List(0)
	if len(got) != 1 {
		t.Errorf("after append: got %d entries, want 1", len(got))
	}
}

func TestClear(t *testing.T) {
	s := tempStore(t)
	if err := s.Append(Entry{Expression: "1", Value: 1}); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("history file still exists after Clear")
	}

	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
