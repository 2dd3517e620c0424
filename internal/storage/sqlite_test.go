package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveScores(t *testing.T, store *Store, board string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		run := Run{RunID: fmt.Sprintf("%s-%d-%d", board, sc, time.Now().UnixNano()), Board: board, Player: "bun", Score: sc, Ticks: sc * 60}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
	store := openTestStore(t)

	saveScores(t, store, "hoppy", 10, 5, 20)
	saveScores(t, store, "hoppy-hard", 50)

	scores, err := store.TopScores("hoppy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Player != "bun" || scores[0].Ticks != 1200 {
		t.Errorf("Run details lost: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	hard, err := store.TopScores("hoppy-hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreSaveRunOnce(t *testing.T) {
	store := openTestStore(t)
	run := Run{RunID: "6f1c", Board: "hoppy", Score: 7}

	id, err := store.SaveRun(run)
	if err != nil || id == 0 {
		t.Fatalf("SaveRun() = %d, %v", id, err)
	}

	run.Score = 99
	id, err = store.SaveRun(run)
	if err != nil {
		t.Fatalf("second SaveRun() failed: %v", err)
	}
	if id != 0 {
		t.Errorf("duplicate run inserted with id %d", id)
	}

	high, _ := store.HighScore("hoppy")
	if high != 7 {
		t.Errorf("Expected first record to win, high score %d", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "hoppy", 1, 2, 3, 4, 5)

	scores, err := store.TopScores("hoppy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hoppy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	saveScores(t, store, "hoppy", 10, 30, 20)

	high, err = store.HighScore("hoppy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "hoppy", 1, 2)
	saveScores(t, store, "hoppy-easy", 3)

	if err := store.ClearScores("hoppy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("hoppy", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("hoppy-easy", 10); len(scores) != 1 {
		t.Error("Other boards should not be affected by clearing")
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetBoardStats("hoppy")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	saveScores(t, store, "hoppy", 2, 4, 6)

	stats, err := store.GetBoardStats("hoppy")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.RunsCount != 3 || stats.HighScore != 6 || stats.AvgScore != 4 || stats.TotalTicks != 720 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
