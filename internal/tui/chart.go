package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/timesheet/internal/report"
)

const (
	minChartWidth = 20
	chartHeight   = 12
)

// RenderChart draws one stacked bar per weekday, one segment per project,
// followed by a legend.
func RenderChart(r *report.Report, width int) string {
	chartWidth := max(width-8, minChartWidth)
	chart := barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for wd := 0; wd < report.Weekdays; wd++ {
		var values []barchart.BarValue
		for i, row := range r.Rows {
			hours := row.Cells[wd].InexactFloat64()
			if hours <= 0 {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  row.Project,
				Value: hours,
				Style: lipgloss.NewStyle().Foreground(projectColor(i)),
			})
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}
		bars = append(bars, barchart.BarData{
			Label:  report.DayLabels[wd],
			Values: values,
		})
	}

	chart.PushAll(bars)
	chart.Draw()

	header := titleStyle.Render("Hours per day")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", chart.View(), "", renderLegend(r))
}

func renderLegend(r *report.Report) string {
	if len(r.Rows) == 0 {
		return mutedStyle.Render("  No data for this period")
	}
	var items []string
	for i, row := range r.Rows {
		dot := lipgloss.NewStyle().Foreground(projectColor(i)).Render("●")
		items = append(items, fmt.Sprintf("%s %s %s", dot, row.Project, mutedStyle.Render(row.Cells.Total().StringFixed(1)+"h")))
	}
	return "  " + strings.Join(items, "  ")
}
