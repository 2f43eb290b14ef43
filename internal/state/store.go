package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/gravplot/internal/sample"
)

// Phase is the ingestion lifecycle stage.
type Phase int

const (
	PhaseReading Phase = iota
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "reading"
	}
}

// Progress counts what the ingestion loop has consumed so far.
type Progress struct {
	LinesRead int
	Matched   int
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Records    []sample.Record
	Progress   Progress
	Phase      Phase
	LastSample time.Time
	Err        error
}

// Terminal reports whether ingestion has stopped.
func (s Snapshot) Terminal() bool {
	return s.Phase != PhaseReading
}

// Store coordinates concurrent access to the snapshot. The zero value is
// ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update publishes the current window. Records are copied.
func (s *Store) Update(records []sample.Record, progress Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress.Matched != s.snapshot.Progress.Matched {
		s.snapshot.LastSample = time.Now()
	}
	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Progress = progress
}

// Finish marks the stream as ended. When err is non-nil the phase becomes
// failed and the previous records are kept for display.
func (s *Store) Finish(progress Progress, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Progress = progress
	if err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Err = err
		return
	}
	s.snapshot.Phase = PhaseDone
	s.snapshot.Err = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}

func cloneRecords(records []sample.Record) []sample.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]sample.Record, len(records))
	copy(dup, records)
	return dup
}
