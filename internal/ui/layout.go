package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 80
)

// Fixed rows around the chart: header, title, legend and footer.
const chromeRows = 4

// Timing constants.
const (
	// DefaultRedrawInterval is used when Options.RedrawEvery is zero.
	DefaultRedrawInterval = 100 * time.Millisecond

	// StatusMessageTTL is how long a snapshot result stays in the footer.
	StatusMessageTTL = 5 * time.Second
)
