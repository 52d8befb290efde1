// Package term renders an assembled heatmap view as a styled terminal block.
// It consumes the same presentation model as the SVG surface, which keeps the
// engine renderer-agnostic.
package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stsysd/koyomi/heatmap"
)

const cellWidth = 4

// Render returns the month view as lipgloss-styled lines: title, weekday
// header, one line per week, and the legend.
func Render(v heatmap.View) string {
	opts := v.Options

	var blocks []string
	if opts.ShowMonth {
		title := lipgloss.NewStyle().Bold(true).Render(v.Title)
		blocks = append(blocks, title)
	}
	if opts.LegendShow && opts.LegendPosition == heatmap.LegendTop {
		blocks = append(blocks, renderLegend(v))
	}
	if opts.ShowWeekday {
		blocks = append(blocks, renderWeekdayHeader(v))
	}
	blocks = append(blocks, renderGrid(v))
	if opts.LegendShow && opts.LegendPosition == heatmap.LegendBottom {
		blocks = append(blocks, renderLegend(v))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderWeekdayHeader(v heatmap.View) string {
	style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Faint(true)
	cells := make([]string, 0, len(v.WeekdayLabels))
	for _, name := range v.WeekdayLabels {
		cells = append(cells, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderGrid(v heatmap.View) string {
	empty := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	var weeks []string
	for row := 0; row*7 < len(v.Cells); row++ {
		cells := make([]string, 0, 7)
		for _, c := range v.Cells[row*7 : (row+1)*7] {
			cells = append(cells, renderCell(v, c, empty))
		}
		weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, weeks...)
}

func renderCell(v heatmap.View, c heatmap.CellViewModel, empty lipgloss.Style) string {
	// padding days render as blank slots
	if !c.InMonth {
		return empty.Render("")
	}
	content := ""
	if v.Options.ShowDate {
		content = strconv.Itoa(c.DayNumber)
	}
	style := empty.Background(lipgloss.Color(c.FillColor))
	if c.RawValue != nil {
		style = style.Foreground(lipgloss.Color(v.Options.ValueTextColor))
	} else {
		style = style.Foreground(lipgloss.Color(v.Options.TextColor))
	}
	return style.Render(content)
}

func renderLegend(v heatmap.View) string {
	var sb strings.Builder
	for i, level := range v.Legend {
		if i > 0 {
			sb.WriteString("  ")
		}
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(heatmap.MixColor(v.Options.BaseColor, level.Intensity))).
			Render("■")
		sb.WriteString(swatch)
		sb.WriteString(" ")
		sb.WriteString(level.Label)
	}
	return sb.String()
}
