package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

// ChoiceList is a single-selection option list used for multiple-choice and
// true/false questions.
type ChoiceList struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates a new choice list.
func NewChoiceList(prompt string, options []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	default:
		// Number keys select and submit in one stroke.
		if n, ok := digitIndex(kmsg.String()); ok && n < len(c.Options) {
			c.Selected = n
			c.Submitted = true
			c.ChosenIndex = n
		}
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if c.Submitted {
			switch {
			case i == c.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line)
			} else {
				s += theme.Unselected.Render(line)
			}
			s += "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice was the correct one.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}

// digitIndex converts a "1".."9" key into a zero-based index.
func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
