package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

func TestScoreboardCyclesModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{3, 9} {
		if _, err := store.SaveRun(storage.RunRecord{GameID: slide.RunID, Score: score, Frames: 600, ContactsX: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	if got := m.modes[m.mode].ID; got != slide.SandboxID {
		t.Fatalf("first mode = %q, expected %q", got, slide.SandboxID)
	}
	if len(m.runs) != 0 || !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("sandbox should have no runs")
	}

	steps := []struct {
		msg  tea.KeyMsg
		want string
		runs int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, slide.RunID, 2},
		{tea.KeyMsg{Type: tea.KeyRight}, slide.SandboxID, 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, slide.RunID, 2},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, slide.SandboxID, 0},
	}
	for _, st := range steps {
		updated, _ := m.Update(st.msg)
		m = updated.(ScoreboardModel)
		if got := m.modes[m.mode].ID; got != st.want {
			t.Fatalf("after %s mode = %q, expected %q", st.msg, got, st.want)
		}
		if len(m.runs) != st.runs {
			t.Errorf("after %s runs = %d, expected %d", st.msg, len(m.runs), st.runs)
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if m.runs[0].Score != 9 {
		t.Errorf("best run score = %d, expected 9", m.runs[0].Score)
	}
	view := m.View()
	if !strings.Contains(view, "Slide Run") || !strings.Contains(view, "runs 2  best 9") {
		t.Errorf("view should name the mode and summarize its runs, got %q", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := updated.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should go back and end the program")
	}
	if back.View() != "" {
		t.Error("closed scoreboard should render nothing")
	}

	updated, _ = m.Update(runeKey('q'))
	if quit := updated.(ScoreboardModel); !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
}
