// Package list provides the record list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/strindex/internal/core/domain"
)

// RecordList displays stored strings in a navigable list.
type RecordList struct {
	records  []domain.StringRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates an empty record list.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		styles: s,
		width:  40,
		height: 10,
	}
}

// Update handles list navigation keys.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of records.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No strings")
	}

	header := r.styles.Subtitle.Render(fmt.Sprintf("Strings (%d)", len(r.records)))
	lines := []string{header, ""}

	start, end := r.window()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.records[i]))
	}

	return strings.Join(lines, "\n")
}

// window returns the slice bounds that keep the selection visible.
func (r *RecordList) window() (int, int) {
	visible := r.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.records) {
		end = len(r.records)
	}
	return start, end
}

func (r *RecordList) renderRecord(index int, rec *domain.StringRecord) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	maxLen := r.width - 8
	if maxLen < 8 {
		maxLen = 8
	}
	value := Truncate(printable(rec.Value), maxLen)
	padded := value + strings.Repeat(" ", max(0, maxLen-lipgloss.Width(value)))
	length := fmt.Sprintf("%4d", rec.Properties.Length)

	if index == r.selected {
		return r.styles.Selected.Render(indicator + padded + length)
	}
	return r.styles.Normal.Render(indicator+padded) + r.styles.Muted.Render(length)
}

// SetRecords replaces the list contents and resets the selection.
func (r *RecordList) SetRecords(records []domain.StringRecord) {
	r.records = records
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.StringRecord {
	return r.records
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected moves the selection to index if it is in range.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the selected record, or nil if the list is empty.
func (r *RecordList) SelectedRecord() *domain.StringRecord {
	if r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// Remove drops the record with value and keeps the selection in range.
func (r *RecordList) Remove(value string) bool {
	for i := range r.records {
		if r.records[i].Value != value {
			continue
		}
		r.records = append(r.records[:i:i], r.records[i+1:]...)
		if r.selected >= len(r.records) && r.selected > 0 {
			r.selected = len(r.records) - 1
		}
		return true
	}
	return false
}

// MoveUp moves the selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the list dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Truncate shortens s to at most n characters, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// printable makes control characters visible so rows stay on one line.
func printable(s string) string {
	return strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(s)
}
