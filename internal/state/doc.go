// Package state shares ingestion progress between the ingestion loop and the UI.
//
// # Overview
//
// The ingestion goroutine owns the rolling sample window. After every line it
// publishes a copy of the window and its counters to a Store; the UI reads a
// Snapshot on its own redraw tick.
//
//	Producer (ingest):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ decode line    │            │                 │
//	│ window.Push()  │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│ store.Finish() │            │  redraw chart   │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	store.Update(records, progress)
//	→ snapshot.Records = copy(records)
//	→ snapshot.LastSample = now   (only when Matched changed)
//
//	store.Finish(progress, nil)
//	→ snapshot.Phase = done
//
//	store.Finish(progress, err)
//	→ snapshot.Phase = failed, Records unchanged, Err = err
//
// Records are copied on both Update and Snapshot, so neither side can mutate
// what the other holds. Snapshot also wraps Err in a fresh value.
//
// The zero Store is ready to use and reports PhaseReading with no records.
package state
