// SPDX-License-Identifier: MIT

// Package bench: report rendering. Fixed-width comparison table, column
// widths measured with lipgloss so styled and plain cells align the same.
package bench

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle()
)

// reportHeaders is the fixed column set of a rendered report.
var reportHeaders = []string{"case", "reps", "mean", "median", "std", "min", "max"}

// Render returns the report as a fixed-width text table: one row per case,
// in run order, durations rounded to the microsecond.
func (r *Report) Render() string {
	if r == nil || len(r.Summaries) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Reps),
			fmtDur(s.Mean),
			fmtDur(s.Median),
			fmtDur(s.Std),
			fmtDur(s.Min),
			fmtDur(s.Max),
		})
	}

	// Measure column widths over headers and cells.
	widths := make([]int, len(reportHeaders))
	for i, h := range reportHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}

	writeRow(reportHeaders, headerStyle)
	for _, row := range rows {
		writeRow(row, cellStyle)
	}

	return sb.String()
}

// fmtDur rounds to the microsecond; sub-microsecond noise is not worth
// column width in a comparison table.
func fmtDur(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
