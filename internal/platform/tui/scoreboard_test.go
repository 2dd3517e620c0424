package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hoppy/internal/storage"
)

func TestScoreRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 12, Player: "bun", Ticks: 900, CreatedAt: at},
		{Score: 3, Ticks: 90, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := []string{"#1", "12", "bun", "15.0s", "Mar 04 05:06"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "-" {
		t.Errorf("anonymous player = %q, want -", rows[1][2])
	}
}

func TestScoreboardSwitchesBoards(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{RunID: "a", Board: "hoppy", Score: 5}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{RunID: "b", Board: "hoppy-hard", Score: 9}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, []string{"hoppy", "hoppy-hard"}, 100, 30)
	if m.Board() != "hoppy" || len(m.scores) != 1 || m.scores[0].Score != 5 {
		t.Fatalf("initial board %q scores %+v", m.Board(), m.scores)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != "hoppy-hard" || len(m.scores) != 1 || m.scores[0].Score != 9 {
		t.Errorf("after tab: board %q scores %+v", m.Board(), m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Board() != "hoppy" {
		t.Errorf("after shift+tab: board %q", m.Board())
	}

	if !strings.Contains(m.View(), "HIGH SCORES - hoppy") {
		t.Error("title missing board name")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, []string{"hoppy"}, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty board message missing")
	}
}
