package chart

import (
	"math"
	"strings"

	tm "github.com/buger/goterm"

	"github.com/five82/gravplot/internal/sample"
)

// Minimum chart dimensions goterm can lay out axes in.
const (
	MinWidth  = 20
	MinHeight = 6
)

// Finite returns the records whose time and plotted axes are all finite.
// ParseFloat accepts "inf" and "nan", and neither can be placed on an axis.
func Finite(records []sample.Record) []sample.Record {
	out := make([]sample.Record, 0, len(records))
	for _, rec := range records {
		if finitePoint(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func finitePoint(rec sample.Record) bool {
	if !isFinite(rec.Time) {
		return false
	}
	for _, axis := range sample.Axes {
		if v, _ := rec.Field(axis); !isFinite(v) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Plottable reports whether the finite records span enough time to draw a
// line.
func Plottable(records []sample.Record) bool {
	records = Finite(records)
	if len(records) < 2 {
		return false
	}
	lo, hi := timeRange(records)
	span := hi - lo
	return span > 0 && isFinite(span)
}

func timeRange(records []sample.Record) (lo, hi float64) {
	lo, hi = records[0].Time, records[0].Time
	for _, rec := range records[1:] {
		lo = min(lo, rec.Time)
		hi = max(hi, rec.Time)
	}
	return lo, hi
}

// scalable reports whether goterm's axis scaling stays finite for records.
// goterm pads the value range by 10% and divides the chart size by it; an
// infinite scale turns points into NaN coordinates, and drawing a line to
// one never terminates.
func scalable(records []sample.Record, width, height int) bool {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, rec := range records {
		for _, axis := range sample.Axes {
			v, _ := rec.Field(axis)
			minY = min(minY, v)
			maxY = max(maxY, v)
		}
	}
	if maxY > 0 {
		maxY *= 1.1
	} else {
		maxY *= 0.9
	}
	if minY > 0 {
		minY *= 0.9
	} else {
		minY *= 1.1
	}

	scaleY := float64(height) / maxY
	if minY < 0 {
		scaleY = float64(height) / (maxY - minY)
	}
	lo, hi := timeRange(records)
	scaleX := float64(width) / (hi - lo)

	return isFinite(minY) && isFinite(maxY) && isFinite(scaleX) && isFinite(scaleY)
}

// Table builds the goterm data table: time on the first column, one column
// per axis.
func Table(records []sample.Record) *tm.DataTable {
	data := new(tm.DataTable)
	data.AddColumn(sample.ColTime)
	for _, axis := range sample.Axes {
		data.AddColumn(axis)
	}
	for _, rec := range Finite(records) {
		row := make([]float64, 0, len(sample.Axes)+1)
		row = append(row, rec.Time)
		for _, axis := range sample.Axes {
			v, _ := rec.Field(axis)
			row = append(row, v)
		}
		data.AddRow(row...)
	}
	return data
}

// Terminal renders the axes against time as a width x height text chart.
// Non-finite samples are skipped. It returns an empty string when the rest
// cannot be drawn.
func Terminal(records []sample.Record, width, height int) (out string) {
	records = Finite(records)
	if !Plottable(records) {
		return ""
	}
	width = max(width, MinWidth)
	height = max(height, MinHeight)
	if !scalable(records, width, height) {
		return ""
	}

	// goterm writes axis labels without bounds checks; labels for huge
	// values can run past the buffer.
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	c := tm.NewLineChart(width, height)
	out = c.Draw(Table(records))
	return strings.TrimRight(out, "\n")
}
