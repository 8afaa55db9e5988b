// Package detail renders the properties of a single stored string.
package detail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/strindex/internal/core/domain"
)

// Pane shows every property of the selected record.
type Pane struct {
	styles *styles.Styles
	record *domain.StringRecord
	width  int
	height int
}

// NewPane creates an empty detail pane.
func NewPane(s *styles.Styles) *Pane {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Pane{styles: s, width: 40, height: 12}
}

// SetRecord sets the record to display. nil clears the pane.
func (p *Pane) SetRecord(rec *domain.StringRecord) {
	p.record = rec
}

// Record returns the displayed record.
func (p *Pane) Record() *domain.StringRecord {
	return p.record
}

// SetDimensions sets the pane dimensions including its border.
func (p *Pane) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// View renders the pane.
func (p *Pane) View() string {
	inner := p.width - 4
	if inner < 10 {
		inner = 10
	}

	if p.record == nil {
		return p.styles.Pane.Width(inner).Render(p.styles.Muted.Render("Nothing selected"))
	}

	props := p.record.Properties
	palindrome := p.styles.Muted.Render("no")
	if props.IsPalindrome {
		palindrome = p.styles.Positive.Render("yes")
	}

	lines := []string{
		p.row("value", p.styles.Normal.Render(list.Truncate(strconv.Quote(p.record.Value), inner-20))),
		p.row("length", strconv.Itoa(props.Length)),
		p.row("palindrome", palindrome),
		p.row("unique characters", strconv.Itoa(props.UniqueCharacters)),
		p.row("word count", strconv.Itoa(props.WordCount)),
		p.row("sha256", list.Truncate(props.SHA256Hash, inner-20)),
		p.row("created", p.record.CreatedAt),
		"",
		p.styles.Subtitle.Render("Frequencies"),
	}
	lines = append(lines, p.frequencies(inner)...)

	return p.styles.Pane.Width(inner).Render(strings.Join(lines, "\n"))
}

func (p *Pane) row(label, value string) string {
	return p.styles.Label.Render(label) + value
}

// frequencies lays the character counts out in rows that fit width,
// stopping early when the pane runs out of height.
func (p *Pane) frequencies(width int) []string {
	freq := p.record.Properties.CharacterFrequencyMap
	if len(freq) == 0 {
		return []string{p.styles.Muted.Render("(empty)")}
	}

	maxRows := p.height - 12
	if maxRows < 1 {
		maxRows = 1
	}

	var rows []string
	var cur strings.Builder
	for i, e := range freq {
		cell := fmt.Sprintf("%s:%d", strconv.QuoteRune(e.Char), e.Count)
		if cur.Len() > 0 && cur.Len()+1+len(cell) > width {
			if len(rows) == maxRows-1 {
				rows = append(rows, cur.String()+p.styles.Muted.Render(fmt.Sprintf(" +%d more", len(freq)-i)))
				return rows
			}
			rows = append(rows, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(cell)
	}
	return append(rows, cur.String())
}
