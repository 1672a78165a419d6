package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sadopc/timesheet/internal/report"
)

// SheetName is the single worksheet ToXLSX creates.
const SheetName = "Timesheet"

// ToXLSX writes the matrix as a workbook. Zero cells stay empty, as in the
// text table.
func ToXLSX(r *report.Report, w io.Writer) error {
	f, err := newWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func newWorkbook(r *report.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	hours, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr("0.0")})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("number style: %w", err)
	}
	totals, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: ptr("0.0"),
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("totals style: %w", err)
	}

	if err := writeSheet(f, r, bold, hours, totals); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, r *report.Report, bold, hours, totals int) error {
	if err := f.SetCellValue(SheetName, "A1", "Project"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, h := range report.DayLabels {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	rowNo := 2
	for _, row := range r.Rows {
		if err := writeSheetRow(f, rowNo, row.Project, row.Cells); err != nil {
			return err
		}
		rowNo++
	}
	if err := writeSheetRow(f, rowNo, report.TotalsLabel, r.Totals); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(report.DayLabels) + 1)
	if err != nil {
		return err
	}
	if rowNo > 2 {
		if err := f.SetCellStyle(SheetName, "B2", fmt.Sprintf("%s%d", lastCol, rowNo-1), hours); err != nil {
			return fmt.Errorf("number style: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", rowNo), fmt.Sprintf("%s%d", lastCol, rowNo), totals); err != nil {
		return fmt.Errorf("totals style: %w", err)
	}

	if err := f.SetColWidth(SheetName, "A", "A", labelColumnWidth(r.TagWidth)); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", lastCol, 8); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	return nil
}

// labelColumnWidth fits the label column to the widest label, within what
// Excel accepts.
func labelColumnWidth(tagWidth int) float64 {
	return float64(min(max(tagWidth, 10)+2, excelize.MaxColumnWidth))
}

func writeSheetRow(f *excelize.File, rowNo int, label string, cells report.Cells) error {
	if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", rowNo), label); err != nil {
		return fmt.Errorf("write row %d: %w", rowNo, err)
	}
	for i, c := range cells {
		if c.IsZero() {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+2, rowNo)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, c.InexactFloat64()); err != nil {
			return fmt.Errorf("write row %d: %w", rowNo, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
