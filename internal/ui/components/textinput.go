package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NoteInput is a single-line free-text field.
type NoteInput struct {
	Model textinput.Model
}

// NewNoteInput creates a focused input limited to limit characters.
func NewNoteInput(placeholder string, limit int) NoteInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return NoteInput{Model: ti}
}

// Init focuses the input.
func (n NoteInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update forwards messages to the underlying input.
func (n NoteInput) Update(msg tea.Msg) (NoteInput, tea.Cmd) {
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NoteInput) View() string {
	return n.Model.View()
}

// Value returns the trimmed text.
func (n NoteInput) Value() string {
	return strings.TrimSpace(n.Model.Value())
}
