package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(lines <-chan Line) []Line {
	var out []Line
	for l := range lines {
		out = append(out, l)
	}
	return out
}

func TestStream_NumbersLinesAndClosesAtEOF(t *testing.T) {
	lines, errc := Stream(context.Background(), strings.NewReader("a\nb\r\n\nc"))

	got := collect(lines)
	require.NoError(t, <-errc)
	assert.Equal(t, []Line{
		{Number: 1, Text: "a"},
		{Number: 2, Text: "b"},
		{Number: 3, Text: ""},
		{Number: 4, Text: "c"},
	}, got)
}

func TestStream_ReportsReadError(t *testing.T) {
	boom := errors.New("boom")
	lines, errc := Stream(context.Background(), iotest.ErrReader(boom))

	assert.Empty(t, collect(lines))
	err := <-errc
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestStream_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines, errc := Stream(ctx, strings.NewReader(strings.Repeat("x\n", 100)))

	first := <-lines
	assert.Equal(t, 1, first.Number)
	cancel()

	// Drain whatever was in flight; the channel must close.
	for range lines {
	}
	assert.NoError(t, <-errc)
}
