package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

// PairMatcher walks through the left column one item at a time, letting the
// learner pick a partner from the unclaimed right items. Submission happens
// automatically once every left item has a partner.
type PairMatcher struct {
	Prompt    string
	Left      []string
	Right     []string
	Cursor    int
	Pairs     map[int]int // left index -> right index
	Submitted bool

	currentLeft int
}

// NewPairMatcher creates a matcher over the two columns. Right is expected
// to be pre-shuffled by the caller.
func NewPairMatcher(prompt string, left, right []string) PairMatcher {
	return PairMatcher{
		Prompt: prompt,
		Left:   left,
		Right:  right,
		Pairs:  make(map[int]int),
	}
}

// Init returns nil.
func (m PairMatcher) Init() tea.Cmd {
	return nil
}

// Update handles navigation, pairing, and undo.
func (m PairMatcher) Update(msg tea.Msg) (PairMatcher, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	available := m.availableRight()

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(available)-1 {
			m.Cursor++
		}
	case "enter":
		if len(available) > 0 && m.currentLeft < len(m.Left) {
			m.Pairs[m.currentLeft] = available[m.Cursor]
			m.currentLeft++
			m.Cursor = 0
			if len(m.Pairs) == len(m.Left) {
				m.Submitted = true
			}
		}
	case "backspace":
		if m.currentLeft > 0 {
			m.currentLeft--
			delete(m.Pairs, m.currentLeft)
			m.Cursor = 0
		}
	}

	return m, nil
}

// availableRight returns right indices not yet claimed by a pair.
func (m PairMatcher) availableRight() []int {
	claimed := make(map[int]bool, len(m.Pairs))
	for _, r := range m.Pairs {
		claimed[r] = true
	}
	var out []int
	for i := range m.Right {
		if !claimed[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders completed pairs, the active left item, and the right pool.
func (m PairMatcher) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for li := 0; li < m.currentLeft; li++ {
		line := fmt.Sprintf("  %s -> %s", m.Left[li], m.Right[m.Pairs[li]])
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		b.WriteString("\n")
	}

	if m.currentLeft < len(m.Left) {
		if m.currentLeft > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("  Match: %s", m.Left[m.currentLeft])))
		b.WriteString("\n\n")

		for i, ri := range m.availableRight() {
			prefix := "  "
			if i == m.Cursor {
				prefix = "> "
			}
			line := prefix + m.Right[ri]
			if i == m.Cursor {
				b.WriteString(theme.Selected.Render(line))
			} else {
				b.WriteString(theme.Unselected.Render(line))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter to match, Backspace to undo"))
	}

	return b.String()
}
