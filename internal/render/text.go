package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/cleared-dev/ledger/internal/report"
)

const columnGap = "  "

// Plain writes aligned columns. Amount columns are right-aligned.
type Plain struct{}

func (Plain) Render(w io.Writer, t report.Table) error {
	return writeColumns(w, t, nil)
}

// Color writes the same layout as Plain, with negative amounts in red, zero
// amounts in yellow and section headings in bold.
type Color struct {
	negative *color.Color
	zero     *color.Color
	heading  *color.Color
}

// NewColor returns a Color renderer. It emits escapes even when
// color.NoColor is set.
func NewColor() *Color {
	c := &Color{
		negative: color.New(color.FgRed),
		zero:     color.New(color.FgYellow),
		heading:  color.New(color.Bold),
	}
	c.negative.EnableColor()
	c.zero.EnableColor()
	c.heading.EnableColor()
	return c
}

func (c *Color) Render(w io.Writer, t report.Table) error {
	return writeColumns(w, t, c.style)
}

func (c *Color) style(cell report.Cell, section bool, padded string) string {
	switch {
	case section:
		return c.heading.Sprint(padded)
	case !cell.IsAmount():
		return padded
	case cell.Amount.IsNegative():
		return c.negative.Sprint(padded)
	case cell.Amount.IsZero():
		return c.zero.Sprint(padded)
	default:
		return padded
	}
}

// styleFunc decorates an already padded cell.
type styleFunc func(cell report.Cell, section bool, padded string) string

func displayText(c report.Cell) string {
	if c.IsAmount() {
		return FormatAmount(*c.Amount)
	}
	return c.Text
}

func writeColumns(w io.Writer, t report.Table, style styleFunc) error {
	widths := make([]int, len(t.Headers))
	rightAlign := make([]bool, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range t.Rows {
		if r.Section {
			continue
		}
		for i, c := range r.Cells {
			if i >= len(widths) {
				widths = append(widths, 0)
				rightAlign = append(rightAlign, false)
			}
			if n := utf8.RuneCountInString(displayText(c)); n > widths[i] {
				widths[i] = n
			}
			if c.IsAmount() {
				rightAlign[i] = true
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		title := t.Title
		if style != nil {
			title = style(report.Text(title), true, title)
		}
		b.WriteString(title)
		b.WriteByte('\n')
	}

	if len(t.Headers) > 0 {
		cells := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			cells[i] = pad(h, widths[i], rightAlign[i])
		}
		writeLine(&b, cells)
	}

	for _, r := range t.Rows {
		if r.Section {
			label := r.Label()
			if style != nil {
				label = style(report.Text(label), true, label)
			}
			b.WriteString(label)
			b.WriteByte('\n')
			continue
		}
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			padded := pad(displayText(c), widths[i], rightAlign[i])
			if style != nil {
				padded = style(c, false, padded)
			}
			cells[i] = padded
		}
		writeLine(&b, cells)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " "))
	b.WriteByte('\n')
}

func pad(s string, width int, right bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
