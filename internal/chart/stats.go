package chart

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/five82/gravplot/internal/sample"
)

// SeriesStats summarises one axis over the window.
type SeriesStats struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
	Last float64
}

// Summarize computes stats for every plotted axis. It returns nil for an
// empty window.
func Summarize(records []sample.Record) ([]SeriesStats, error) {
	if len(records) == 0 {
		return nil, nil
	}

	out := make([]SeriesStats, 0, len(sample.Axes))
	for _, axis := range sample.Axes {
		values := stats.Float64Data(sample.Column(records, axis))

		lo, err := values.Min()
		if err != nil {
			return nil, fmt.Errorf("%s min: %w", axis, err)
		}
		hi, err := values.Max()
		if err != nil {
			return nil, fmt.Errorf("%s max: %w", axis, err)
		}
		mean, err := values.Mean()
		if err != nil {
			return nil, fmt.Errorf("%s mean: %w", axis, err)
		}

		out = append(out, SeriesStats{
			Name: axis,
			Min:  lo,
			Max:  hi,
			Mean: mean,
			Last: values.Get(values.Len() - 1),
		})
	}
	return out, nil
}
