package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sadopc/timesheet/internal/report"
)

// ToCSV writes the matrix with every cell as a one-decimal number, zeros
// included.
func ToCSV(r *report.Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	// Header
	header := append([]string{"Project"}, report.DayLabels[:]...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range r.Rows {
		if err := cw.Write(csvRecord(row.Project, row.Cells)); err != nil {
			return fmt.Errorf("write csv row %q: %w", row.Project, err)
		}
	}
	if err := cw.Write(csvRecord(report.TotalsLabel, r.Totals)); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func csvRecord(label string, cells report.Cells) []string {
	rec := make([]string, 0, len(cells)+1)
	rec = append(rec, label)
	for _, c := range cells {
		rec = append(rec, c.StringFixed(1))
	}
	return rec
}
