package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []struct {
		outcome string
		lives   int
		ticks   int
	}{
		{"won", 8, 900},
		{"died", 0, 350},
		{"won", 3, 600},
		{"won", 5, 600},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.outcome, r.lives, r.ticks, 10*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("RecentRuns() returned %d entries, expected 4", len(recent))
	}
	// Newest first
	if recent[0].Outcome != "won" || recent[0].LivesLeft != 5 {
		t.Errorf("newest run = %+v, expected the last save", recent[0])
	}

	best, err := store.BestRuns(10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("BestRuns() returned %d entries, expected 3 wins", len(best))
	}
	// Fastest win first; ties broken by lives remaining
	if best[0].Ticks != 600 || best[0].LivesLeft != 5 {
		t.Errorf("best run = %+v, expected 600 ticks with 5 lives", best[0])
	}
	if best[1].Ticks != 600 || best[1].LivesLeft != 3 {
		t.Errorf("second best run = %+v", best[1])
	}
	if best[2].Ticks != 900 {
		t.Errorf("third best run = %+v", best[2])
	}
}

func TestStoreLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun("died", 0, 100+i, time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("RecentRuns(5) returned %d entries", len(recent))
	}
}
