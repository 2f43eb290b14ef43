package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gravplot/internal/chart"
	"github.com/five82/gravplot/internal/sample"
)

// renderChart redraws the window from scratch at the given height.
func (m Model) renderChart(height int) string {
	out := chart.Terminal(m.snapshot.Records, m.width, height)
	if out == "" {
		return m.renderPlaceholder(height)
	}
	// goterm pads to its own width; clip to the frame so the layout holds.
	lines := strings.Split(out, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPlaceholder(height int) string {
	styles := m.theme.Styles()
	records := m.snapshot.Records
	msg := "waiting for " + sample.Tag + " samples…"
	switch {
	case len(records) == 0:
	case chart.Plottable(records):
		msg = "sample values out of chart range"
	case m.snapshot.Terminal() || len(records) > len(chart.Finite(records)):
		msg = "not enough finite samples to plot"
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
}

// renderLegend labels each plotted series with its field name.
func (m Model) renderLegend() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(sample.Axes))
	for _, axis := range sample.Axes {
		swatch := lipgloss.NewStyle().Foreground(SeriesColor(axis)).Render("━━")
		parts = append(parts, swatch+" "+styles.Text.Render(axis))
	}
	legend := strings.Join(parts, "   ") + "   " + styles.FaintText.Render("vs "+sample.ColTime)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, legend)
}

// renderStats renders one line of window statistics per axis.
func (m Model) renderStats() string {
	summary, err := chart.Summarize(m.snapshot.Records)
	if err != nil || len(summary) == 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	cell := lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	lines := make([]string, 0, len(summary))
	for _, s := range summary {
		name := lipgloss.NewStyle().Foreground(SeriesColor(s.Name)).Bold(true)
		row := []string{
			bg.Render(s.Name, name),
			bg.Render("min", styles.MutedText) + bg.Render(cell.Render(formatValue(s.Min)), styles.Text),
			bg.Render("max", styles.MutedText) + bg.Render(cell.Render(formatValue(s.Max)), styles.Text),
			bg.Render("mean", styles.MutedText) + bg.Render(cell.Render(formatValue(s.Mean)), styles.Text),
			bg.Render("last", styles.MutedText) + bg.Render(cell.Render(formatValue(s.Last)), styles.AccentText),
		}
		lines = append(lines, styles.Pane.Width(m.width).Render(bg.Join(row, "   ")))
	}
	return strings.Join(lines, "\n")
}
