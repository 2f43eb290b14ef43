package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gravplot/internal/sample"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func ramp(n int) []sample.Record {
	out := make([]sample.Record, n)
	for i := range out {
		t := float64(i + 1)
		out[i] = sample.Record{Time: t, X: t, Y: -t, Z: t / 2, W: 1}
	}
	return out
}

func TestPlottable(t *testing.T) {
	assert.False(t, Plottable(nil))
	assert.False(t, Plottable(ramp(1)))
	assert.False(t, Plottable([]sample.Record{{Time: 3}, {Time: 3}}))
	assert.True(t, Plottable(ramp(2)))
	assert.False(t, Plottable([]sample.Record{{Time: 1}, {Time: math.Inf(1)}}))
	assert.True(t, Plottable([]sample.Record{{Time: 1}, {Time: 2, X: math.NaN()}, {Time: 3}}))
}

func TestTerminal_EmptyWindowDrawsNothing(t *testing.T) {
	assert.Empty(t, Terminal(nil, 80, 20))
	assert.Empty(t, Terminal(ramp(1), 80, 20))
}

// renderWithin fails the test if Terminal does not return within a few
// seconds.
func renderWithin(t *testing.T, records []sample.Record, width, height int) string {
	t.Helper()
	done := make(chan string, 1)
	go func() { done <- Terminal(records, width, height) }()
	select {
	case out := <-done:
		return out
	case <-time.After(5 * time.Second):
		t.Fatalf("Terminal did not return for %v", records)
		return ""
	}
}

func TestTerminal_DrawsThreeSeries(t *testing.T) {
	out := renderWithin(t, ramp(20), 80, 20)
	require.NotEmpty(t, out)

	// goterm colors column i with ANSI 3i; the legend uses the same.
	for _, seq := range []string{"\x1b[31m", "\x1b[32m", "\x1b[33m"} {
		assert.Contains(t, out, seq)
	}
	assert.Contains(t, out, sample.ColTime)
}

func TestTerminal_SkipsNonFiniteSamples(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	records := []sample.Record{
		{Time: 1, X: 1, Y: 2, Z: 3},
		{Time: 2, X: inf, Y: 2, Z: 3},
		{Time: 3, X: 1, Y: 2, Z: 3},
		{Time: 4, X: 1, Y: nan, Z: 3},
		{Time: inf, X: 1, Y: 2, Z: 3},
		{Time: 5, X: 2, Y: 1, Z: -math.Inf(1)},
	}
	assert.NotEmpty(t, renderWithin(t, records, 80, 20))
}

func TestTerminal_UndrawableWindows(t *testing.T) {
	tests := []struct {
		name    string
		records []sample.Record
	}{
		{"all infinite", []sample.Record{{Time: 1, X: math.Inf(1)}, {Time: 2, X: math.Inf(-1)}}},
		{"all zero", []sample.Record{{Time: 1}, {Time: 2}, {Time: 3}}},
		{"subnormal time span", []sample.Record{{Time: 0, X: 1}, {Time: 5e-324, X: 2}}},
		{"values near max float", []sample.Record{{Time: 1, X: math.MaxFloat64}, {Time: 2, X: -math.MaxFloat64}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, renderWithin(t, tt.records, 80, 20))
		})
	}
}

func TestTerminal_ConstantValues(t *testing.T) {
	records := []sample.Record{{Time: 1, X: 5, Y: 5, Z: 5}, {Time: 2, X: 5, Y: 5, Z: 5}}
	assert.NotEmpty(t, renderWithin(t, records, 80, 20))
}

func TestTerminal_HugeLabelsDoNotPanic(t *testing.T) {
	records := []sample.Record{{Time: 1, X: 1e300, Y: 1e300, Z: 1e300}, {Time: 2, X: 2e300, Y: 2e300, Z: 2e300}}
	assert.NotPanics(t, func() { renderWithin(t, records, MinWidth, MinHeight) })
}

func TestFinite(t *testing.T) {
	records := []sample.Record{{Time: 1}, {Time: math.NaN()}, {Time: 2, Z: math.Inf(1)}, {Time: 3, W: math.Inf(1)}}
	got := Finite(records)
	// W is not plotted, so it does not disqualify a record.
	assert.Equal(t, []sample.Record{{Time: 1}, {Time: 3, W: math.Inf(1)}}, got)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, ramp(10), sample.Tag))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestWritePNG_SkipsNonFiniteSamples(t *testing.T) {
	records := append(ramp(10), sample.Record{Time: 11, X: math.Inf(1), Y: 1, Z: 1})
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, records, sample.Tag))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestWritePNG_NotPlottable(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WritePNG(&buf, ramp(1), sample.Tag), ErrNotPlottable)
	assert.Zero(t, buf.Len())
}

func TestSaveSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	now := time.Date(2026, 10, 17, 9, 30, 5, 0, time.UTC)

	path, err := SaveSnapshot(dir, ramp(5), sample.Tag, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "myGravityComplementary-20261017-093005.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngSignature))
}

func TestSaveSnapshot_NotPlottableCreatesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	_, err := SaveSnapshot(dir, nil, sample.Tag, time.Now())
	assert.ErrorIs(t, err, ErrNotPlottable)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSummarize(t *testing.T) {
	got, err := Summarize(ramp(4))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, SeriesStats{Name: "x", Min: 1, Max: 4, Mean: 2.5, Last: 4}, got[0])
	assert.Equal(t, SeriesStats{Name: "y", Min: -4, Max: -1, Mean: -2.5, Last: -4}, got[1])
	assert.Equal(t, SeriesStats{Name: "z", Min: 0.5, Max: 2, Mean: 1.25, Last: 2}, got[2])
}

func TestSummarize_Empty(t *testing.T) {
	got, err := Summarize(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
