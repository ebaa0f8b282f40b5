package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bloatai/bloatiq/internal/ui/theme"
)

// Selector is a single-choice option list navigated with arrow keys or
// number keys.
type Selector struct {
	Prompt  string
	Options []string
	Cursor  int
	// Chosen is the index confirmed with Enter, or -1.
	Chosen int
}

// NewSelector creates a selector with the cursor on cursor (clamped).
func NewSelector(prompt string, options []string, cursor int) Selector {
	return Selector{
		Prompt:  prompt,
		Options: options,
		Cursor:  min(max(cursor, 0), max(len(options)-1, 0)),
		Chosen:  -1,
	}
}

// Update handles navigation. Enter or a number key confirms a choice.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.Chosen >= 0 {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Options)-1 {
			s.Cursor++
		}
	case "enter", "space":
		if len(s.Options) > 0 {
			s.Chosen = s.Cursor
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(s.Options) {
			s.Cursor = n - 1
			s.Chosen = s.Cursor
		}
	}
	return s, nil
}

// Done reports whether a choice was confirmed.
func (s Selector) Done() bool {
	return s.Chosen >= 0
}

// View renders the prompt and options.
func (s Selector) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(s.Prompt))
	b.WriteString("\n\n")

	for i, opt := range s.Options {
		line := fmt.Sprintf("%d) %s", i+1, opt)
		if i == s.Cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
