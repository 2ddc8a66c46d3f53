package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// colorEnabled tracks whether color output is enabled.
// It starts out true only when stdout is a terminal.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green is used for success messages.
func Green(s string) string { return colorize(colorGreen, s) }

// Red is used for errors.
func Red(s string) string { return colorize(colorRed, s) }

// Yellow is used for "not found" and other soft failures.
func Yellow(s string) string { return colorize(colorYellow, s) }

// Bold is used for headings.
func Bold(s string) string { return colorize(colorBold, s) }

// DefaultMaxNameWidth is the default maximum visible width for name and
// position columns.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	header    []string
	rows      [][]string
	colWidths []int
	maxWidths map[int]int  // optional per-column max visible width
	right     map[int]bool // right-aligned columns
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetHeader sets a header row rendered in bold above the data rows.
func (t *Table) SetHeader(cols ...string) {
	t.header = cols
	t.track(cols)
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// SetAlignRight right-aligns a column (used for numbers).
func (t *Table) SetAlignRight(col int) {
	if t.right == nil {
		t.right = make(map[int]bool)
	}
	t.right[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) track(cols []string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	if t.header != nil {
		fmt.Fprintln(w, Bold(t.formatRow(t.header)))
	}
	for _, row := range t.rows {
		fmt.Fprintln(w, t.formatRow(row))
	}
}

func (t *Table) formatRow(row []string) string {
	parts := make([]string, 0, len(row))
	for i, col := range row {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		padding := strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
		switch {
		case t.right[i]:
			parts = append(parts, padding+col)
		case i < len(row)-1:
			parts = append(parts, col+padding)
		default:
			// Last column doesn't need padding
			parts = append(parts, col)
		}
	}
	return strings.Join(parts, "  ")
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when there is room for it. ANSI escape codes do not count toward the
// width and are closed with a reset if any were cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit := maxWidth
	if maxWidth >= len(ellipsis) {
		limit = maxWidth - len(ellipsis)
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
			hasAnsi = true
			b.WriteRune(r)
			continue
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= limit {
			break
		}
		b.WriteRune(r)
		visible++
	}

	if maxWidth >= len(ellipsis) {
		b.WriteString(ellipsis)
	}
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}
