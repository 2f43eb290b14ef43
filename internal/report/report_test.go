package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gravplot/internal/sample"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatNone, false},
		{"none", FormatNone, false},
		{" Table ", FormatTable, false},
		{"csv", FormatCSV, false},
		{"json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	records := []sample.Record{
		{Time: 1, X: 0.5, Y: 9.81, Z: -0.25, W: 1},
		{Time: 2, X: 0.75, Y: 9.8, Z: 0, W: 1},
	}
	require.NoError(t, WriteCSV(&b, records))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,x,y,z,w", lines[0])
	assert.Equal(t, "1,0.5,9.81,-0.25,1", lines[1])
}

func TestWriteCSV_EmptyWindowWritesHeader(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, nil))
	assert.Equal(t, "time,x,y,z,w", strings.TrimSpace(b.String()))
}

func TestWriteTable(t *testing.T) {
	var b strings.Builder
	records := []sample.Record{{Time: 1, X: 1, Y: 2, Z: 3, W: 4}, {Time: 2, X: 3, Y: 2, Z: 1, W: 4}}
	require.NoError(t, WriteTable(&b, records))

	out := b.String()
	for _, want := range []string{"TIME", "SERIES", "MEAN"} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_NoneIsSilent(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Write(&b, FormatNone, []sample.Record{{Time: 1}}))
	assert.Empty(t, b.String())
}
