package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// Line is one line of input. Number starts at 1.
type Line struct {
	Number int
	Text   string
}

// Stream reads r line by line on its own goroutine. The line channel is
// closed at end of input or when ctx is cancelled. A read error, if any, is
// delivered on the error channel before it is closed.
func Stream(ctx context.Context, r io.Reader) (<-chan Line, <-chan error) {
	lines := make(chan Line)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
		n := 0
		for scanner.Scan() {
			n++
			select {
			case lines <- Line{Number: n, Text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("read input: %w", err)
		}
	}()

	return lines, errc
}
