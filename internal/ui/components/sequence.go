package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

// SequenceBuilder lets the learner arrange shuffled items into order by
// picking them one at a time. The cursor moves over the remaining items;
// enter appends the highlighted item to the arrangement, backspace undoes
// the last pick. Submission happens automatically once every item is placed.
type SequenceBuilder struct {
	Prompt    string
	Items     []string
	Cursor    int
	Order     []int // indices into Items, in picked order
	Submitted bool
}

// NewSequenceBuilder creates a sequence builder over the given items.
func NewSequenceBuilder(prompt string, items []string) SequenceBuilder {
	return SequenceBuilder{
		Prompt: prompt,
		Items:  items,
	}
}

// Init returns nil.
func (s SequenceBuilder) Init() tea.Cmd {
	return nil
}

// Update handles navigation, picking, and undo.
func (s SequenceBuilder) Update(msg tea.Msg) (SequenceBuilder, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	remaining := s.remaining()

	switch kmsg.String() {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(remaining)-1 {
			s.Cursor++
		}
	case "enter":
		if len(remaining) > 0 {
			s.Order = append(s.Order, remaining[s.Cursor])
			if s.Cursor >= len(remaining)-1 && s.Cursor > 0 {
				s.Cursor--
			}
			if len(s.Order) == len(s.Items) {
				s.Submitted = true
			}
		}
	case "backspace":
		if len(s.Order) > 0 {
			s.Order = s.Order[:len(s.Order)-1]
		}
	}

	return s, nil
}

// remaining returns item indices that have not been placed yet.
func (s SequenceBuilder) remaining() []int {
	placed := make(map[int]bool, len(s.Order))
	for _, i := range s.Order {
		placed[i] = true
	}
	var out []int
	for i := range s.Items {
		if !placed[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the arranged items above the remaining pool.
func (s SequenceBuilder) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Prompt))
	b.WriteString("\n\n")

	for pos, idx := range s.Order {
		line := fmt.Sprintf("  %d. %s", pos+1, s.Items[idx])
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		b.WriteString("\n")
	}
	if len(s.Order) > 0 {
		b.WriteString("\n")
	}

	remaining := s.remaining()
	for i, idx := range remaining {
		prefix := "  "
		if i == s.Cursor {
			prefix = "> "
		}
		line := prefix + s.Items[idx]
		if i == s.Cursor {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if !s.Submitted {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter to place, Backspace to undo"))
	}

	return b.String()
}
