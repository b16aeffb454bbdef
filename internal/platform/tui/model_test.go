package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func shortRun(ticks int) *slide.Game {
	cfg := config.DefaultSlideConfig()
	cfg.Run.DurationTicks = ticks
	cfg.Difficulty.Enabled = false
	return slide.NewWithConfig(true, cfg)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(TickMsg(time.Now()))
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(shortRun(2), store, testRuntime())
	m.Init()

	for i := 0; i < 4; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("run should be over")
	}

	runs, err := store.TopRuns(slide.RunID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one saved run, got %d", len(runs))
	}
	if runs[0].Frames != 2 {
		t.Errorf("Frames = %d, expected 2", runs[0].Frames)
	}

	// Restart re-arms saving for the next run
	m, _ = pressKey(t, m, runeKey('r'))
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	runs, _ = store.TopRuns(slide.RunID, 10)
	if len(runs) != 2 {
		t.Errorf("expected two saved runs after restart, got %d", len(runs))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(shortRun(1), nil, testRuntime())
	m.Init()
	m = tick(t, m)
	if !m.State().GameOver {
		t.Error("run should be over")
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel(shortRun(1), nil, testRuntime())
	m.Init()

	// Back is ignored while the run is live
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-run")
	}

	m = tick(t, m)
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("back should leave a finished run")
	}
	if cmd == nil {
		t.Error("standalone model should quit on back")
	}

	e := newEmbeddedModel(shortRun(1), nil, testRuntime())
	e.Init()
	e = tick(t, e)
	e, cmd = pressKey(t, e, tea.KeyMsg{Type: tea.KeyEsc})
	if !e.BackToMenu() || cmd != nil {
		t.Errorf("embedded model should only flag back, got back=%v cmd=%v", e.BackToMenu(), cmd != nil)
	}
}

func TestModelQuitAndView(t *testing.T) {
	m := NewModel(shortRun(100), nil, testRuntime())
	m.Init()
	m = tick(t, m)

	if view := m.View(); !strings.Contains(view, "Slide Run") {
		t.Errorf("View() missing HUD title: %q", view)
	}

	m, cmd := pressKey(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var s tea.Model = NewSessionModel(nil, testRuntime())

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := s.(SessionModel)
	if sm.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}

	s, _ = s.Update(runeKey('p'))
	s, _ = s.Update(TickMsg(time.Now()))
	if !s.(SessionModel).gameModel.State().Paused {
		t.Fatal("game should be paused")
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = s.(SessionModel)
	if sm.gameModel != nil {
		t.Fatal("back should return to the menu")
	}
	if !strings.Contains(sm.View(), "S L I D E") {
		t.Errorf("expected menu view, got %q", sm.View())
	}
}

func TestSessionScoreboard(t *testing.T) {
	var s tea.Model = NewSessionModel(nil, testRuntime())

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s.(SessionModel).scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Errorf("expected scoreboard view, got %q", s.View())
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.(SessionModel).scoreboard != nil {
		t.Error("back should close the scoreboard")
	}
}
