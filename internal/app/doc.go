// Package app is the composition root for gravplot.
//
// Run loads config.toml and prefs.toml, builds the logrus logger, and wires a
// shared state.Store between the ingestor and whichever front end applies:
//
//	stdin ──> ingest.Stream ──> ingest.Ingestor ──> state.Store ──> ui (tick)
//
// With a terminal on stdout the Bubble Tea chart runs in the foreground while
// StartIngest feeds the store from a background goroutine. Without one, or
// with -headless, ingestion runs in the foreground and logs go to stderr.
//
// A decode error ends the run and is returned to the caller so the process
// exits non-zero. Cancellation (SIGINT/SIGTERM or quitting the UI) is not an
// error. After a clean run the optional exit summary is written to stdout.
package app
