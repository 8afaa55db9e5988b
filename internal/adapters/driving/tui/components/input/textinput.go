// Package input provides the query line component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the query line is empty.
const Placeholder = "phrase, is_palindrome=true&min_length=3, or +value to add"

// QueryInput wraps a bubbles textinput for filter and phrase entry.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewQueryInput creates a focused query line.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init starts the cursor blink.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the query line.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Query: ")
	field := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the library constant
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue replaces the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus gives the query line keyboard focus.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes keyboard focus.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused reports whether the query line has focus.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sizes the field to fit width, leaving room for the label and border.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	inner := width - 14
	if inner < 10 {
		inner = 10
	}
	q.textinput.Width = inner
}

// Width returns the configured width.
func (q *QueryInput) Width() int {
	return q.width
}
