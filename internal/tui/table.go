// Package tui renders the timesheet for a terminal: a styled table and a bar
// chart of hours per day. Nothing here reads input; each call renders once.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sadopc/timesheet/internal/report"
)

// RenderTable renders the report as a bordered lipgloss table. Zero cells
// are blank, as in the plain table.
func RenderTable(r *report.Report) string {
	headers := append([]string{""}, report.DayLabels[:]...)

	rows := make([][]string, 0, len(r.Rows)+1)
	for _, row := range r.Rows {
		rows = append(rows, tableRow(row.Project, row.Cells))
	}
	rows = append(rows, tableRow(report.TotalsLabel, r.Totals))
	totalsRow := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case row == totalsRow:
				if col == 0 {
					return totalsCellStyle.Align(lipgloss.Left)
				}
				return totalsCellStyle
			case col == 0:
				return labelCellStyle
			default:
				return numberCellStyle
			}
		})
	return t.Render()
}

func tableRow(label string, cells report.Cells) []string {
	out := make([]string, 0, len(cells)+1)
	out = append(out, label)
	for _, c := range cells {
		out = append(out, report.FormatCell(c))
	}
	return out
}
