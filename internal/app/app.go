package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/five82/gravplot/internal/config"
	"github.com/five82/gravplot/internal/ingest"
	"github.com/five82/gravplot/internal/logging"
	"github.com/five82/gravplot/internal/prefs"
	"github.com/five82/gravplot/internal/report"
	"github.com/five82/gravplot/internal/state"
	"github.com/five82/gravplot/internal/ui"
)

// Options configure a gravplot run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gravplot/prefs.toml
	LogPath    string // overrides config log_file
	Headless   bool
	Summary    report.Format
	Debug      bool

	// Streams; nil means the process stdio.
	Input  io.Reader
	Output io.Writer
	Errors io.Writer
}

// Run ingests samples from the input until it ends, drawing them live when a
// terminal is attached.
func Run(ctx context.Context, opts Options) error {
	opts = withStdio(opts)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	headless := opts.Headless || !isTerminal(opts.Output)

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	var fallback io.Writer
	if headless {
		fallback = opts.Errors
	}
	logger, closer, err := logging.New(logPath, fallback, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()

	store := &state.Store{}
	ingestor := ingest.New(store, logger)

	if headless {
		err = runHeadless(ctx, opts.Input, ingestor, logger)
	} else {
		err = runInteractive(ctx, opts, cfg, store, ingestor, logger)
	}
	if err != nil {
		return err
	}

	// The store holds the last published window; the ingestor may still be
	// blocked on input after the user quits.
	if err := report.Write(opts.Output, opts.Summary, store.Snapshot().Records); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func runHeadless(ctx context.Context, in io.Reader, ingestor *ingest.Ingestor, logger log.FieldLogger) error {
	logger.Info("headless mode: no terminal attached")
	return ignoreCancel(ingestor.Run(ctx, in))
}

func runInteractive(ctx context.Context, opts Options, cfg config.Config, store *state.Store, ingestor *ingest.Ingestor, logger log.FieldLogger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := StartIngest(ctx, ingestor, opts.Input)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	uiErr := ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		RedrawEvery: cfg.RedrawInterval,
		SnapshotDir: cfg.SnapshotDir,
		Prefs:       prefs.Load(prefsPath),
		PrefsPath:   prefsPath,
		Logger:      logger,
	})
	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}

	// The user may quit while ingestion is blocked reading stdin; only a
	// finished ingestion has a result worth reporting.
	if snap := store.Snapshot(); snap.Terminal() {
		return ignoreCancel(<-errc)
	}
	return nil
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func withStdio(opts Options) Options {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Errors == nil {
		opts.Errors = os.Stderr
	}
	return opts
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
