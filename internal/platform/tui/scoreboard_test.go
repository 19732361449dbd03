package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func boardStep(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sb, ok := next.(ScoreboardModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sb
	}
	return m
}

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	for _, r := range []storage.RunResult{
		{GameID: "scripted", Score: 300, Lines: 2, Pieces: 12},
		{GameID: "scripted", Score: 900, Lines: 6, Pieces: 40},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func scriptedBoard(t *testing.T, store *storage.Store) ScoreboardModel {
	t.Helper()
	withScriptedMode(t)
	m := NewScoreboardModel(store, 100, 30)
	for range len(m.modes) {
		if m.GameID() == "scripted" {
			return m
		}
		m = boardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatal("scripted mode not on the scoreboard")
	return m
}

func TestScoreboardLoadsRunsBestFirst(t *testing.T) {
	m := scriptedBoard(t, seededStore(t))

	if len(m.scores) != 2 {
		t.Fatalf("loaded %d runs, want 2", len(m.scores))
	}
	if m.scores[0].Score != 900 {
		t.Errorf("first row score = %d, want 900", m.scores[0].Score)
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "900" || len(rows[0][4]) != 8 {
		t.Errorf("table rows = %v", rows)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v, want 2 games", m.stats)
	}
	if !strings.Contains(m.View(), "2 games") {
		t.Error("view should show the stats line")
	}
}

func TestScoreboardClearNeedsTwoPresses(t *testing.T) {
	store := seededStore(t)
	m := scriptedBoard(t, store)
	clearKey := runeKey("X")

	m = boardStep(t, m, clearKey)
	if !m.confirmClear || len(m.scores) != 2 {
		t.Fatal("first press should only arm the clear")
	}

	// Any other key disarms it
	m = boardStep(t, m, tea.KeyMsg{Type: tea.KeyDown}, clearKey, clearKey)
	if len(m.scores) != 0 {
		t.Errorf("%d runs left after clearing", len(m.scores))
	}
	if high, _ := store.HighScore("scripted"); high != 0 {
		t.Errorf("HighScore after clear = %d, want 0", high)
	}
}

func TestScoreboardDisarmsOnOtherKey(t *testing.T) {
	m := scriptedBoard(t, seededStore(t))
	m = boardStep(t, m, runeKey("X"), tea.KeyMsg{Type: tea.KeyDown}, runeKey("X"))
	if len(m.scores) != 2 {
		t.Error("an interrupted confirmation should not clear")
	}
	if !m.confirmClear {
		t.Error("the last press should arm a new confirmation")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	withScriptedMode(t)

	m := boardStep(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}

	m = boardStep(t, NewScoreboardModel(nil, 80, 24), runeKey("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	withScriptedMode(t)
	m := NewScoreboardModel(nil, 80, 24)
	m = boardStep(t, m, runeKey("X"))
	if m.confirmClear {
		t.Error("clear should be disabled without a store")
	}
	if !strings.Contains(m.View(), "No runs recorded") {
		t.Error("empty scoreboard should say so")
	}
}
