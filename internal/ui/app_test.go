package ui

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gravplot/internal/prefs"
	"github.com/five82/gravplot/internal/sample"
	"github.com/five82/gravplot/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Store:       &state.Store{},
		SnapshotDir: t.TempDir(),
		Prefs:       prefs.Prefs{Theme: "Nightfox", ShowStats: true},
		PrefsPath:   filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func press(m Model, keys string) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func ramp(n int) []sample.Record {
	out := make([]sample.Record, n)
	for i := range out {
		v := float64(i + 1)
		out[i] = sample.Record{Time: v, X: v, Y: -v, Z: v / 2}
	}
	return out
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q, want Loading...", got)
	}
}

func TestView_EmptyWindowShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "waiting for "+sample.Tag) {
		t.Fatalf("View missing placeholder:\n%s", out)
	}
	if !strings.Contains(out, sample.Tag) {
		t.Fatalf("View missing title")
	}
}

func TestView_WithSamples(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(snapshotMsg(state.Snapshot{
		Records:  ramp(5),
		Progress: state.Progress{LinesRead: 9, Matched: 5},
	}))
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"gravplot", "READING", "5/20", "mean"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "waiting for") {
		t.Fatalf("View should draw the chart, not the placeholder")
	}
}

func TestView_NonFiniteSamplesShowPlaceholder(t *testing.T) {
	m := newTestModel(t)
	inf := math.Inf(1)
	next, _ := m.Update(snapshotMsg(state.Snapshot{
		Records: []sample.Record{{Time: 1, X: inf, Y: 2, Z: 3}, {Time: 2, X: inf, Y: 2, Z: 3}},
	}))
	m = next.(Model)

	done := make(chan string, 1)
	go func() { done <- m.View() }()
	select {
	case out := <-done:
		if !strings.Contains(out, "not enough finite samples") {
			t.Fatalf("View missing non-finite placeholder:\n%s", out)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("View did not return for a window of infinite samples")
	}
}

func TestUpdate_FailedSnapshotQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(snapshotMsg(state.Snapshot{Phase: state.PhaseFailed, Err: errors.New("line 3: bad")}))
	if !isQuit(cmd) {
		t.Fatalf("failed snapshot should quit")
	}
}

func TestUpdate_DoneSnapshotStays(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(snapshotMsg(state.Snapshot{Phase: state.PhaseDone, Records: ramp(3)}))
	if isQuit(cmd) {
		t.Fatalf("done snapshot should keep the chart on screen")
	}
	if out := next.(Model).View(); !strings.Contains(out, "DONE") {
		t.Fatalf("View missing DONE badge:\n%s", out)
	}
}

func TestHandleKey_Quit(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := press(m, "q"); !isQuit(cmd) {
		t.Fatalf("q should quit")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestHandleKey_HelpClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "?")
	if !m.showHelp {
		t.Fatalf("? should open help")
	}
	if out := m.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered")
	}
	m, cmd := press(m, "q")
	if m.showHelp || isQuit(cmd) {
		t.Fatalf("any key should only close help")
	}
}

func TestHandleKey_ThemeAndStatsPersist(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	m, _ = press(m, "S")
	if m.showStats {
		t.Fatalf("S should hide stats")
	}

	saved := prefs.Load(m.prefsPath)
	if saved.Theme != "Kanagawa" || saved.ShowStats {
		t.Fatalf("saved prefs = %#v, want Kanagawa with stats hidden", saved)
	}
}

func TestHandleKey_SnapshotWritesPNG(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(snapshotMsg(state.Snapshot{Records: ramp(4)}))
	m = next.(Model)

	_, cmd := press(m, "p")
	if cmd == nil {
		t.Fatalf("p should return a save command")
	}
	msg, ok := cmd().(pngSavedMsg)
	if !ok {
		t.Fatalf("save command returned %T, want pngSavedMsg", msg)
	}
	if msg.err != nil {
		t.Fatalf("save failed: %v", msg.err)
	}
	if filepath.Dir(msg.path) != m.snapshotDir {
		t.Fatalf("path = %q, want it in %q", msg.path, m.snapshotDir)
	}

	next, _ = m.Update(msg)
	if out := next.(Model).View(); !strings.Contains(out, "saved") {
		t.Fatalf("footer should report the saved snapshot:\n%s", out)
	}
}

func TestHandleKey_SnapshotEmptyWindowReportsError(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(m, "p")
	msg := cmd().(pngSavedMsg)
	if msg.err == nil {
		t.Fatalf("expected an error for an empty window")
	}
	next, _ := m.Update(msg)
	if !next.(Model).statusErr {
		t.Fatalf("statusErr = false, want true")
	}
}

func TestChartHeight(t *testing.T) {
	m := newTestModel(t)
	if got := m.chartHeight(); got != 30-chromeRows {
		t.Fatalf("chartHeight empty = %d, want %d", got, 30-chromeRows)
	}
	next, _ := m.Update(snapshotMsg(state.Snapshot{Records: ramp(2)}))
	if got := next.(Model).chartHeight(); got != 30-chromeRows-3 {
		t.Fatalf("chartHeight with stats = %d, want %d", got, 30-chromeRows-3)
	}
}
