package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

// PlaybackBar displays the playback position as a horizontal bar with
// elapsed/total timestamps.
type PlaybackBar struct {
	Position float64 // seconds
	Duration float64 // seconds
	Paused   bool
	Width    int
}

// NewPlaybackBar creates a new playback bar.
func NewPlaybackBar(position, duration float64, paused bool, width int) PlaybackBar {
	return PlaybackBar{
		Position: position,
		Duration: duration,
		Paused:   paused,
		Width:    width,
	}
}

// View renders the playback bar.
func (p PlaybackBar) View() string {
	icon := "|>"
	if p.Paused {
		icon = "||"
	}
	result := lipgloss.NewStyle().Foreground(theme.Accent).Render(icon) + " "

	timeStr := fmt.Sprintf("  %s / %s", Timestamp(p.Position), Timestamp(p.Duration))

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(timeStr)
	if barWidth < 4 {
		barWidth = 4
	}

	var percent float64
	if p.Duration > 0 {
		percent = p.Position / p.Duration
	}
	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.PlaybackFilled.Render(strings.Repeat(" ", filled))
	result += theme.PlaybackEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(timeStr)

	return result
}

// Timestamp formats seconds as m:ss, or h:mm:ss past the hour mark.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
