package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// String renders the plain timesheet table.
func (r *Report) String() string {
	var b strings.Builder
	sep := r.separator()

	b.WriteString(strings.Repeat(" ", r.TagWidth))
	b.WriteString(" | ")
	for _, day := range DayLabels {
		fmt.Fprintf(&b, "%*s | ", r.ColumnWidth, day)
	}
	b.WriteString("\n")
	b.WriteString(sep)

	for _, row := range r.Rows {
		r.writeRow(&b, row.Project, row.Cells)
	}
	b.WriteString(sep)
	r.writeRow(&b, TotalsLabel, r.Totals)
	return b.String()
}

// Render writes the table to w in one call.
func (r *Report) Render(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}

func (r *Report) separator() string {
	return strings.Repeat("=", r.TagWidth) + "=|" +
		strings.Repeat("="+strings.Repeat("=", r.ColumnWidth)+"=|", len(DayLabels)) + "\n"
}

func (r *Report) writeRow(b *strings.Builder, label string, cells Cells) {
	b.WriteString(runewidth.FillRight(label, r.TagWidth))
	b.WriteString(" |")
	for _, c := range cells {
		fmt.Fprintf(b, " %*s |", r.ColumnWidth, FormatCell(c))
	}
	b.WriteString("\n")
}

// FormatCell renders a cell with one fractional digit, or "" for zero.
func FormatCell(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(1)
}
