// Package report prints the final sample window when a run ends.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"

	"github.com/five82/gravplot/internal/chart"
	"github.com/five82/gravplot/internal/sample"
)

// Format selects how the summary is printed.
type Format string

const (
	FormatNone  Format = "none"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a -summary flag value. Empty means FormatNone.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatNone:
		return FormatNone, nil
	case FormatTable, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown summary format %q (want none, table or csv)", value)
	}
}

// Write prints records to w in the given format.
func Write(w io.Writer, format Format, records []sample.Record) error {
	switch format {
	case FormatTable:
		return WriteTable(w, records)
	case FormatCSV:
		return WriteCSV(w, records)
	default:
		return nil
	}
}

// WriteTable prints the window followed by per-axis statistics.
func WriteTable(w io.Writer, records []sample.Record) error {
	samples := tablewriter.NewWriter(w)
	samples.SetHeader(sample.Columns)
	samples.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, rec := range records {
		row := make([]string, 0, len(sample.Columns))
		for _, col := range sample.Columns {
			v, _ := rec.Field(col)
			row = append(row, formatFloat(v))
		}
		samples.Append(row)
	}
	samples.Render()

	summary, err := chart.Summarize(records)
	if err != nil {
		return fmt.Errorf("summarize window: %w", err)
	}
	if len(summary) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"series", "min", "max", "mean", "last"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range summary {
		table.Append([]string{
			s.Name,
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Mean),
			formatFloat(s.Last),
		})
	}
	table.Render()
	return nil
}

// WriteCSV prints the window as CSV with a header row.
func WriteCSV(w io.Writer, records []sample.Record) error {
	if records == nil {
		records = []sample.Record{}
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
