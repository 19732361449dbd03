package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openAt(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	return openAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func mustSave(t *testing.T, store *Store, r RunResult) string {
	t.Helper()
	id, err := store.SaveScore(r)
	if err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", r, err)
	}
	return id
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

func TestStoreMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		v, err := store.SchemaVersion()
		if err != nil {
			t.Fatalf("SchemaVersion() failed: %v", err)
		}
		if v != len(migrations) {
			t.Errorf("SchemaVersion() = %d, want %d", v, len(migrations))
		}
		mustSave(t, store, RunResult{GameID: "blockfall", Score: 100})
		store.Close()
	}

	store := openAt(t, dbPath)
	if all, _ := store.AllScores("blockfall"); len(all) != 2 {
		t.Errorf("runs kept across reopen = %d, want 2", len(all))
	}
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := openAt(t, dbPath)
	if _, err := store.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	if s, err := Open(dbPath); err == nil {
		s.Close()
		t.Error("Open() should refuse a schema from a newer build")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.blockfall/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".blockfall", "scores.db"); got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}
	if got, _ := expandHome("rel/scores.db"); got != "rel/scores.db" {
		t.Errorf("relative path changed to %q", got)
	}
}

func TestStoreSaveReturnsRunID(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, RunResult{GameID: "blockfall", Score: 800, Lines: 4, Pieces: 12})
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Score != 800 || got.Lines != 4 || got.Pieces != 12 || got.GameID != "blockfall" {
		t.Errorf("RunByID() = %+v", got)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("unknown run: got %v, %v; want nil, nil", missing, err)
	}
	if _, err := store.RunByID("not-a-uuid"); !errors.Is(err, ErrInvalidRunID) {
		t.Errorf("malformed run id error = %v, want ErrInvalidRunID", err)
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(RunResult{Score: 100}); err == nil {
		t.Error("SaveScore without game id should fail")
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunResult{GameID: "blockfall", Score: 100, Lines: 1})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 300, Lines: 2})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 300, Lines: 3})
	mustSave(t, store, RunResult{GameID: "blockfall_classic", Score: 500, Lines: 3})

	scores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Equal scores fall back to more lines first
	if scores[0].Score != 300 || scores[0].Lines != 3 {
		t.Errorf("first = %+v, want score 300 lines 3", scores[0])
	}
	if scores[1].Score != 300 || scores[1].Lines != 2 {
		t.Errorf("second = %+v, want score 300 lines 2", scores[1])
	}
	if scores[2].Score != 100 {
		t.Errorf("third = %+v, want score 100", scores[2])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, RunResult{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, RunResult{GameID: "blockfall", Score: 100})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 300})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 200})

	high, err = store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunResult{GameID: "blockfall", Score: 100})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 200})
	mustSave(t, store, RunResult{GameID: "blockfall_classic", Score: 300})

	if err := store.ClearScores("blockfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("blockfall", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("blockfall_classic", 10); len(scores) != 1 {
		t.Error("classic scores should not be affected by clearing blockfall")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, RunResult{GameID: "blockfall", Score: 100, Lines: 1})
	mustSave(t, store, RunResult{GameID: "blockfall", Score: 500, Lines: 5})
	mustSave(t, store, RunResult{GameID: "blockfall_classic", Score: 800, Lines: 4})

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 500 || stats.TotalLines != 6 || stats.BestLines != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 300 {
		t.Errorf("AvgScore = %v, want 300", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["blockfall_classic"].HighScore != 800 {
		t.Errorf("all stats = %v", all)
	}
}
