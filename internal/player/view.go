package player

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rooshmintted/courseplay/internal/ui/components"
	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

func (p *Player) View() tea.View {
	return tea.NewView(p.render())
}

func (p *Player) render() string {
	if p.errMsg != "" {
		return p.renderError()
	}

	switch p.phase {
	case phaseLoading:
		return p.renderLoading()
	case phaseWatching:
		return p.renderWatching()
	case phaseQuestion:
		return p.renderQuestion()
	case phaseFeedback:
		return p.renderFeedback()
	case phaseSummary:
		return p.renderSummary()
	}
	return ""
}

func (p *Player) renderLoading() string {
	return lipgloss.NewStyle().
		Width(p.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Loading course...", p.spin.View()))
}

func (p *Player) renderError() string {
	return lipgloss.NewStyle().
		Width(p.width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", p.errMsg))
}

func (p *Player) renderWatching() string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(p.width).Render(p.course.Title))
	b.WriteString("\n")
	if p.course.Description != "" {
		b.WriteString(theme.Subtitle.Width(p.width).Render(p.course.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	bar := components.NewPlaybackBar(p.progress.VideoTime(), p.course.DurationSeconds, p.paused, p.width-8)
	b.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	status := fmt.Sprintf("answered %d  correct %d", p.progress.TotalAnswered(), p.progress.CorrectCount())
	b.WriteString(lipgloss.NewStyle().
		Width(p.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status))

	if p.syncWarning != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(p.width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(p.syncWarning))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(p.width).Align(lipgloss.Center).
		Render("Space pause/resume   Q quit"))

	return b.String()
}

func (p *Player) renderQuestion() string {
	var b strings.Builder

	header := fmt.Sprintf("Question at %s", components.Timestamp(p.progress.VideoTime()))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(p.width-4, 1))))
	b.WriteString("\n\n")

	var body string
	switch p.kind {
	case kindChoice:
		body = p.choice.View()
	case kindSequence:
		body = p.sequence.View()
	case kindMatching:
		body = p.matcher.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, body))

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(p.width).Align(lipgloss.Center).Render("S skip"))

	return b.String()
}

func (p *Player) renderFeedback() string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.lastEval.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(p.width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(p.width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	b.WriteString("\n\n")

	if p.current != nil && p.current.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(p.width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(p.current.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(p.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to resume..."))

	return b.String()
}

func (p *Player) renderSummary() string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(p.width).Render("Course complete"))
	b.WriteString("\n\n")

	rate := int(p.progress.SuccessRate() * 100)
	lines := []string{
		fmt.Sprintf("Questions answered   %d", p.progress.TotalAnswered()),
		fmt.Sprintf("Correct              %d", p.progress.CorrectCount()),
		fmt.Sprintf("Success rate         %d%%", rate),
	}
	for _, line := range lines {
		b.WriteString(lipgloss.NewStyle().
			Width(p.width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(p.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to exit..."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
