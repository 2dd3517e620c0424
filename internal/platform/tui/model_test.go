package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/storage"
)

// stubGame ends its run after a fixed number of steps.
type stubGame struct {
	runs     int
	steps    int
	endAfter int
	score    int
	last     core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Ticks() int    { return g.steps }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	g.runs++
	g.steps = 0
	return nil
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State(), Restarted: true}
	}
	if !g.over() {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) over() bool { return g.steps >= g.endAfter }

func (g *stubGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "stub", core.ColorHero)
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over(), RunID: "run-" + string(rune('a'+g.runs))}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 3, score: 4}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{Store: store, Board: "hoppy", Player: "bun"})

	for i := 0; i < 10; i++ {
		m = tick(m)
	}

	scores, err := store.TopScores("hoppy", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	if scores[0].Score != 4 || scores[0].Player != "bun" || scores[0].Ticks != 3 {
		t.Errorf("saved %+v", scores[0])
	}
	if !strings.Contains(m.View(), "best 4") {
		t.Error("best score not shown after game over")
	}
}

func TestModelRestartSavesNextRun(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 2, score: 1}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{Store: store})

	m = tick(tick(m))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = tick(m)
	if game.runs != 2 {
		t.Fatalf("runs = %d, want 2", game.runs)
	}
	m = tick(tick(m))

	scores, _ := store.TopScores("stub", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d runs, want 2", len(scores))
	}
}

func TestModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 1}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{Store: store})

	tick(tick(m))

	if scores, _ := store.TopScores("stub", 10); len(scores) != 0 {
		t.Errorf("saved %d runs, want none", len(scores))
	}
}

func TestModelInputReachesGame(t *testing.T) {
	game := &stubGame{endAfter: 100}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = tick(m)
	if !game.last.Has(core.ActionJump) {
		t.Error("hop not delivered")
	}

	tick(m)
	if game.last.Has(core.ActionJump) {
		t.Error("input frame not cleared between ticks")
	}
}

func TestModelStepFramesAreIndependent(t *testing.T) {
	game := &stubGame{endAfter: 100}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = tick(m)
	hop := game.last

	m = tick(m)
	tick(m)
	if !hop.Has(core.ActionJump) {
		t.Error("frame handed to Step was changed by later ticks")
	}
	if game.last.Has(core.ActionJump) {
		t.Error("hop repeated on a later tick")
	}
}

func TestModelQuit(t *testing.T) {
	game := &stubGame{endAfter: 100}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{})

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	game := &stubGame{endAfter: 100}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60}, Options{})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(home, ".arcade", "screenshots", "stub_*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("screenshots = %v, %v", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot content = %q", data)
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("no status after screenshot")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{endAfter: 100}
	game.Reset(core.RuntimeConfig{})
	m := NewModel(game, core.DefaultConfig(), Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.runs != 1 {
		t.Errorf("resize restarted the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-hudHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
