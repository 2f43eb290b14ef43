package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/five82/gravplot/internal/sample"
)

// Image dimensions for PNG snapshots.
const (
	ImageWidth  = 1024
	ImageHeight = 512
)

// ErrNotPlottable is returned when the window holds too few samples to draw.
var ErrNotPlottable = errors.New("need at least two finite samples spanning time")

var seriesColors = map[string]drawing.Color{
	sample.ColX: gochart.ColorRed,
	sample.ColY: gochart.ColorGreen,
	sample.ColZ: gochart.ColorBlue,
}

// WritePNG renders the axes against time as a PNG titled title. Non-finite
// samples are skipped.
func WritePNG(w io.Writer, records []sample.Record, title string) error {
	records = Finite(records)
	if !Plottable(records) {
		return ErrNotPlottable
	}

	xs := sample.Column(records, sample.ColTime)
	series := make([]gochart.Series, 0, len(sample.Axes))
	for _, axis := range sample.Axes {
		series = append(series, gochart.ContinuousSeries{
			Name:    axis,
			XValues: xs,
			YValues: sample.Column(records, axis),
			Style: gochart.Style{
				StrokeColor: seriesColors[axis],
				StrokeWidth: 2,
			},
		})
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  ImageWidth,
		Height: ImageHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  gochart.XAxis{Name: sample.ColTime},
		YAxis:  gochart.YAxis{Name: "value"},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// SnapshotName returns the file name for a snapshot taken at t.
func SnapshotName(tag string, t time.Time) string {
	return fmt.Sprintf("%s-%s.png", tag, t.Format("20060102-150405"))
}

// SaveSnapshot writes a PNG of records into dir and returns the file path.
func SaveSnapshot(dir string, records []sample.Record, tag string, now time.Time) (string, error) {
	if !Plottable(records) {
		return "", ErrNotPlottable
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, SnapshotName(tag, now))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := WritePNG(file, records, tag); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}
