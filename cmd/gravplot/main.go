package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/gravplot/internal/app"
	"github.com/five82/gravplot/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override UI preferences path (optional)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	headless := flag.Bool("headless", false, "ingest without drawing the chart")
	summary := flag.String("summary", string(report.FormatNone), "print the final window on exit: none, table, or csv")
	debug := flag.Bool("debug", false, "log every decoded sample")
	flag.Parse()

	format, err := report.ParseFormat(*summary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gravplot: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
		Headless:   *headless,
		Summary:    format,
		Debug:      *debug,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gravplot: %v\n", err)
		return 1
	}
	return 0
}
