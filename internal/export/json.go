package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sadopc/timesheet/internal/report"
)

type jsonExport struct {
	GeneratedAt string        `json:"generated_at"`
	Projects    []jsonProject `json:"projects"`
	Totals      jsonProject   `json:"totals"`
}

type jsonProject struct {
	Name  string        `json:"name"`
	Days  []json.Number `json:"days"`
	Total json.Number   `json:"total"`
}

// ToJSON writes the matrix as indented JSON. Hours are JSON numbers with one
// fractional digit.
func ToJSON(r *report.Report, w io.Writer, generatedAt time.Time) error {
	export := jsonExport{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Projects:    make([]jsonProject, 0, len(r.Rows)),
		Totals:      newJSONProject(report.TotalsLabel, r.Totals),
	}
	for _, row := range r.Rows {
		export.Projects = append(export.Projects, newJSONProject(row.Project, row.Cells))
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func newJSONProject(name string, cells report.Cells) jsonProject {
	p := jsonProject{Name: name, Days: make([]json.Number, report.Weekdays)}
	for i := 0; i < report.Weekdays; i++ {
		p.Days[i] = json.Number(cells[i].StringFixed(1))
	}
	p.Total = json.Number(cells.Total().StringFixed(1))
	return p
}
