// Package app wires input, report and output for one run of the tool.
package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/timesheet/internal/config"
	"github.com/sadopc/timesheet/internal/export"
	"github.com/sadopc/timesheet/internal/report"
	"github.com/sadopc/timesheet/internal/timew"
	"github.com/sadopc/timesheet/internal/tui"
)

// ChartWidth is the width the styled chart is drawn at.
const ChartWidth = 80

// Run reads a timewarrior export from in and writes the weekly report to out,
// or to cfg.Output when set. Nothing is written unless the whole report was
// produced. A nil clock means the wall clock; a nil logger discards.
func Run(cfg config.Config, in io.Reader, out io.Writer, clock timew.Clock, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	input, err := timew.Read(in, timew.NewDecoder(clock, loc))
	if err != nil {
		return err
	}
	logger.Debug("read input",
		"bytes", humanize.Bytes(uint64(input.Bytes)),
		"config_keys", sortedKeys(input.Config),
		"intervals", len(input.Intervals),
	)
	if input.Registry == nil {
		logger.Warn("input has no interval section", "sentinel", "[")
	}

	r := report.FromIntervals(input.Intervals)
	logger.Debug("aggregated", "projects", len(r.Rows), "total_hours", r.Totals.Total().StringFixed(1))

	var buf bytes.Buffer
	if err := encode(&buf, cfg, r, clock); err != nil {
		return fmt.Errorf("encode %s: %w", cfg.Format, err)
	}
	logger.Debug("rendered", "format", cfg.Format, "size", humanize.Bytes(uint64(buf.Len())))

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", "path", cfg.Output)
		return nil
	}
	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func encode(w *bytes.Buffer, cfg config.Config, r *report.Report, clock timew.Clock) error {
	switch cfg.Format {
	case config.FormatText:
		return r.Render(w)
	case config.FormatStyled:
		w.WriteString(tui.RenderTable(r))
		w.WriteString("\n")
		if cfg.Chart {
			w.WriteString("\n")
			w.WriteString(tui.RenderChart(r, ChartWidth))
			w.WriteString("\n")
		}
		return nil
	case config.FormatCSV:
		return export.ToCSV(r, w)
	case config.FormatJSON:
		if clock == nil {
			clock = timew.SystemClock()
		}
		return export.ToJSON(r, w, clock.Now())
	case config.FormatXLSX:
		return export.ToXLSX(r, w)
	}
	return fmt.Errorf("%w: unknown format %q", config.ErrInvalid, cfg.Format)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
