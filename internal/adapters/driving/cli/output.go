package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// printer writes records as aligned text, styled when out is a terminal.
type printer struct {
	out    io.Writer
	styled bool

	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	yes   lipgloss.Style
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}

	return &printer{
		out:    out,
		styled: styled,
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		value:  lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		yes:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) field(name, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.render(p.label, fmt.Sprintf("%-18s", name+":")), value)
}

// Record prints every property of rec.
func (p *printer) Record(rec *domain.StringRecord) {
	props := rec.Properties
	palindrome := "false"
	if props.IsPalindrome {
		palindrome = p.render(p.yes, "true")
	}

	p.field("value", p.render(p.value, strconv.Quote(rec.Value)))
	p.field("id", rec.ID)
	p.field("length", strconv.Itoa(props.Length))
	p.field("is_palindrome", palindrome)
	p.field("unique_characters", strconv.Itoa(props.UniqueCharacters))
	p.field("word_count", strconv.Itoa(props.WordCount))
	p.field("created_at", rec.CreatedAt)
	p.field("frequencies", formatFrequencies(props.CharacterFrequencyMap))
}

// Records prints one line per record followed by a count.
func (p *printer) Records(records []domain.StringRecord) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, p.render(p.muted, "No strings found."))
		return
	}

	for i := range records {
		props := records[i].Properties
		flags := fmt.Sprintf("length=%d words=%d unique=%d", props.Length, props.WordCount, props.UniqueCharacters)
		if props.IsPalindrome {
			flags += " " + p.render(p.yes, "palindrome")
		}
		fmt.Fprintf(p.out, "  %s  %s\n", p.render(p.value, strconv.Quote(records[i].Value)), p.render(p.muted, flags))
	}
	fmt.Fprintf(p.out, "\n%d string(s)\n", len(records))
}

// Note prints a muted line.
func (p *printer) Note(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(p.muted, fmt.Sprintf(format, args...)))
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// formatFrequencies renders counts as c:n pairs in first-occurrence order.
func formatFrequencies(freq domain.FrequencyMap) string {
	if len(freq) == 0 {
		return "(none)"
	}
	parts := make([]string, len(freq))
	for i, e := range freq {
		parts[i] = strconv.QuoteRune(e.Char) + ":" + strconv.Itoa(e.Count)
	}
	return strings.Join(parts, " ")
}

// formatFilters renders applied filters as sorted key=value pairs.
func formatFilters(applied map[string]string) string {
	if len(applied) == 0 {
		return "none"
	}
	pairs := make([]string, 0, len(applied))
	for k, v := range applied {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}
