package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gravplot/internal/sample"
	"github.com/five82/gravplot/internal/state"
)

// renderHeader renders the status bar: logo, phase, counters and clock.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	snap := m.snapshot

	phaseStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.PhaseColor(snap.Phase))).
		Bold(true)

	parts := []string{
		bg.Render("gravplot", styles.Logo),
		bg.Render("● "+strings.ToUpper(snap.Phase.String()), phaseStyle),
		m.counter(bg, styles, "Samples:", "S:", fmt.Sprintf("%d/%d", len(snap.Records), sample.WindowSize), compact),
		m.counter(bg, styles, "Lines:", "L:", fmt.Sprintf("%d", snap.Progress.LinesRead), compact),
		m.counter(bg, styles, "Matched:", "M:", fmt.Sprintf("%d", snap.Progress.Matched), compact),
	}

	if ts := formatLastSample(snap.LastSample, time.Now()); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) counter(bg BgStyle, styles Styles, label, short, value string, compact bool) string {
	if compact {
		label = short
	}
	return bg.Render(label, styles.MutedText) + bg.Space() + bg.Render(value, styles.Text)
}

// formatLastSample shows the wall clock of the newest sample with its age.
func formatLastSample(last, now time.Time) string {
	if last.IsZero() {
		return ""
	}
	age := now.Sub(last)
	return fmt.Sprintf("%s (%s)", last.Format("15:04:05"), humanizeDuration(age))
}

// renderTitle renders the plot title: the tag being charted.
func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.Title.Render(sample.Tag))
}

// renderFooter renders key hints and the latest snapshot or phase message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.WarningText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	left := bg.Join(hints, " • ")

	right := ""
	switch {
	case m.status != "" && time.Since(m.statusAt) < StatusMessageTTL:
		style := styles.AccentText
		if m.statusErr {
			style = styles.DangerText
		}
		right = bg.Render(truncate(m.status, max(m.width/2, 10)), style)
	case m.snapshot.Phase == state.PhaseDone:
		right = bg.Render("end of input", styles.MutedText)
	}

	content := left
	if right != "" {
		gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 2 {
			content = right
		} else {
			content = left + bg.Spaces(gap) + right
		}
	}
	return styles.Footer.Width(m.width).Render(content)
}
