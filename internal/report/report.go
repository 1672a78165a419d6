// Package report folds intervals into a project by weekday matrix of hours
// and renders it as the timesheet table.
package report

import (
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/sadopc/timesheet/internal/timew"
)

const (
	// Weekdays is the number of day cells in a row. The cell after them is
	// the row total.
	Weekdays = 7
	// ColumnWidth is the width of every numeric column.
	ColumnWidth = 6
	// TotalsLabel names the final row.
	TotalsLabel = "totals"
)

// DayLabels are the column headers, Monday first, then the total.
var DayLabels = [Weekdays + 1]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Tot"}

var secondsPerHour = decimal.New(3600, 0)

// Cells is one table row: seven day cells followed by their sum.
type Cells [Weekdays + 1]decimal.Decimal

// Total returns the last cell.
func (c Cells) Total() decimal.Decimal { return c[Weekdays] }

// Row is the hours of one project.
type Row struct {
	Project string
	Cells   Cells
}

// Report is the aggregated week.
type Report struct {
	// Rows in ascending label order.
	Rows        []Row
	Totals      Cells
	ColumnWidth int
	TagWidth    int
}

// Hours converts seconds to hours rounded half away from zero to tenths.
func Hours(seconds int64) decimal.Decimal {
	return decimal.New(seconds, 0).Div(secondsPerHour).Round(1)
}

// FromIntervals sums intervals per project and weekday. Row and column totals
// are sums of the already rounded day cells.
func FromIntervals(intervals []timew.Interval) *Report {
	raw := make(map[string]*[Weekdays]int64)
	for _, iv := range intervals {
		days, ok := raw[iv.Project()]
		if !ok {
			days = new([Weekdays]int64)
			raw[iv.Project()] = days
		}
		days[iv.Weekday()] += iv.Seconds()
	}

	projects := make([]string, 0, len(raw))
	for p := range raw {
		projects = append(projects, p)
	}
	sort.Strings(projects)

	r := &Report{
		Rows:        make([]Row, 0, len(projects)),
		ColumnWidth: ColumnWidth,
		TagWidth:    runewidth.StringWidth(TotalsLabel),
	}
	for _, p := range projects {
		r.TagWidth = max(r.TagWidth, runewidth.StringWidth(p))

		row := Row{Project: p}
		for wd, secs := range raw[p] {
			cell := Hours(secs)
			row.Cells[wd] = cell
			row.Cells[Weekdays] = row.Cells[Weekdays].Add(cell)
			r.Totals[wd] = r.Totals[wd].Add(cell)
		}
		r.Rows = append(r.Rows, row)
	}
	for wd := 0; wd < Weekdays; wd++ {
		r.Totals[Weekdays] = r.Totals[Weekdays].Add(r.Totals[wd])
	}
	return r
}
