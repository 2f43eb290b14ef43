package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/five82/gravplot/internal/sample"
	"github.com/five82/gravplot/internal/state"
)

// Ingestor turns tagged log lines into samples in a rolling window.
type Ingestor struct {
	tag      string
	window   *sample.Window
	store    *state.Store
	logger   log.FieldLogger
	progress state.Progress
}

// New creates an ingestor for sample.Tag with a sample.WindowSize window.
// store may be nil; logger may be nil to discard log output.
func New(store *state.Store, logger log.FieldLogger) *Ingestor {
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Ingestor{
		tag:    sample.Tag,
		window: sample.NewWindow(sample.WindowSize),
		store:  store,
		logger: logger.WithField("tag", sample.Tag),
	}
}

// Records returns the current window, oldest first.
func (i *Ingestor) Records() []sample.Record {
	return i.window.Records()
}

// Progress returns the line counters.
func (i *Ingestor) Progress() state.Progress {
	return i.progress
}

// Ingest processes one line. It reports whether the line carried the tag.
// A decode error leaves the window unchanged.
func (i *Ingestor) Ingest(line string) (bool, error) {
	i.progress.LinesRead++

	rec, ok, err := sample.ParseLine(line, i.tag)
	if !ok {
		return false, nil
	}
	if err != nil {
		return true, err
	}

	i.progress.Matched++
	i.window.Push(rec)
	i.logger.WithFields(log.Fields{
		"time": rec.Time,
		"x":    rec.X,
		"y":    rec.Y,
		"z":    rec.Z,
	}).Debug("sample")
	return true, nil
}

// Run consumes r until end of input, a decode error, or ctx cancellation.
// Every processed line is published to the store. End of input and errors
// finish the store; cancellation leaves its phase unchanged.
func (i *Ingestor) Run(ctx context.Context, r io.Reader) (err error) {
	defer func() {
		if i.store == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		i.store.Finish(i.progress, err)
	}()

	lines, errc := Stream(ctx, r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, open := <-lines:
			if !open {
				if readErr := <-errc; readErr != nil {
					i.logger.WithError(readErr).Error("input aborted")
					return readErr
				}
				i.logger.WithFields(log.Fields{
					"lines":   i.progress.LinesRead,
					"matched": i.progress.Matched,
				}).Info("end of input")
				return nil
			}
			_, ingestErr := i.Ingest(line.Text)
			if ingestErr != nil {
				i.logger.WithError(ingestErr).WithField("line", line.Number).Error("decode failed")
				return fmt.Errorf("line %d: %w", line.Number, ingestErr)
			}
			if i.store != nil {
				i.store.Update(i.window.Records(), i.progress)
			}
		}
	}
}
