package sample

// WindowSize is the number of records kept for display.
const WindowSize = 20

// Window is a fixed-capacity ring of the most recent records. Pushing into a
// full window overwrites the oldest record. Not safe for concurrent use.
type Window struct {
	buf   []Record
	start int
	n     int
}

// NewWindow returns an empty window. A non-positive capacity uses WindowSize.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = WindowSize
	}
	return &Window{buf: make([]Record, capacity)}
}

// Push appends rec, evicting the oldest record when the window is full.
func (w *Window) Push(rec Record) {
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = rec
		w.n++
		return
	}
	w.buf[w.start] = rec
	w.start = (w.start + 1) % len(w.buf)
}

// Len returns the number of stored records.
func (w *Window) Len() int { return w.n }

// Records returns a copy of the stored records, oldest first.
func (w *Window) Records() []Record {
	if w.n == 0 {
		return nil
	}
	out := make([]Record, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.start+i)%len(w.buf)]
	}
	return out
}
