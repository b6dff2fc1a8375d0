package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(score, "normal"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d].Score = %d, expected %d", i, s.Score, want[i])
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*10, "easy"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Top score = %d, expected 140", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store reports zero, not an error.
	best, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", best)
	}

	//nolint:errcheck // inserts verified via HighScore below
	store.SaveScore(70, "hard")
	//nolint:errcheck
	store.SaveScore(30, "easy")

	best, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 70 {
		t.Errorf("HighScore() = %d, expected 70", best)
	}
}

func TestStoreKeepsDifficulty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(10, ""); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Difficulty != "normal" {
		t.Errorf("empty difficulty stored as %q, expected default 'normal'", scores[0].Difficulty)
	}
}
