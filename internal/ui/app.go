// Package ui renders the live sample chart with Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/five82/gravplot/internal/chart"
	"github.com/five82/gravplot/internal/prefs"
	"github.com/five82/gravplot/internal/sample"
	"github.com/five82/gravplot/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	RedrawEvery time.Duration
	SnapshotDir string
	Prefs       prefs.Prefs
	PrefsPath   string
	Logger      log.FieldLogger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store       *state.Store
	redrawEvery time.Duration
	snapshotDir string
	prefsPath   string
	logger      log.FieldLogger
	keys        keyMap

	// UI state
	theme     Theme
	showStats bool
	showHelp  bool
	width     int
	height    int
	ready     bool

	// Data state
	snapshot state.Snapshot

	// Footer message from the last snapshot attempt
	status    string
	statusErr bool
	statusAt  time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	redraw := opts.RedrawEvery
	if redraw <= 0 {
		redraw = DefaultRedrawInterval
	}

	logger := opts.Logger
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return Model{
		store:       opts.Store,
		redrawEvery: redraw,
		snapshotDir: opts.SnapshotDir,
		prefsPath:   opts.PrefsPath,
		logger:      logger,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		showStats:   opts.Prefs.ShowStats,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.redrawEvery)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.redrawEvery))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.Phase == state.PhaseFailed {
			return m, tea.Quit
		}
		return m, nil

	case pngSavedMsg:
		m.statusAt = time.Now()
		if msg.err != nil {
			m.status = fmt.Sprintf("snapshot failed: %v", msg.err)
			m.statusErr = true
			m.logger.WithError(msg.err).Warn("snapshot failed")
			return m, nil
		}
		m.status = "saved " + msg.path
		m.statusErr = false
		m.logger.WithField("path", msg.path).Info("snapshot saved")
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleStats):
		m.showStats = !m.showStats
		m.savePrefs()

	case key.Matches(msg, m.keys.Snapshot):
		return m, savePNGCmd(m.snapshotDir, m.snapshot.Records)
	}
	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowStats: m.showStats}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.WithError(err).Warn("save prefs")
	}
}

// renderMain renders header, title, chart, legend, stats and footer.
func (m Model) renderMain() string {
	rows := []string{
		m.renderHeader(),
		m.renderTitle(),
		m.renderChart(m.chartHeight()),
		m.renderLegend(),
	}
	if m.showStats {
		if pane := m.renderStats(); pane != "" {
			rows = append(rows, pane)
		}
	}
	rows = append(rows, m.renderFooter())
	return strings.Join(rows, "\n")
}

// chartHeight is the space left for the plot once the chrome is laid out.
func (m Model) chartHeight() int {
	h := m.height - chromeRows
	if m.showStats && len(m.snapshot.Records) > 0 {
		h -= len(sample.Axes)
	}
	return max(h, chart.MinHeight)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type pngSavedMsg struct {
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func savePNGCmd(dir string, records []sample.Record) tea.Cmd {
	return func() tea.Msg {
		path, err := chart.SaveSnapshot(dir, records, sample.Tag, time.Now())
		return pngSavedMsg{path: path, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits, the
// context is cancelled, or ingestion fails. Keyboard input is read from the
// controlling terminal because stdin carries the samples.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
