// svg.go
// Generates a monthly calendar heatmap as an SVG string in Go.
package heatmap

import (
	"fmt"
	"strings"
)

const (
	svgFontSize      = 10
	svgTitleFontSize = 12
	svgSwatchSize    = 10
)

// GenerateMonthlyHeatmapSVG renders one assembled month view as an SVG string.
// Cells carry data-date and data-value attributes plus a <title> tooltip so the
// output stays inspectable and scriptable when embedded.
func GenerateMonthlyHeatmapSVG(v View) string {
	opts := v.Options
	cols := 7
	rows := len(v.Cells) / cols

	titleHeight := 0
	if opts.ShowMonth {
		titleHeight = svgTitleFontSize + 8
	}
	weekdayHeight := 0
	if opts.ShowWeekday {
		weekdayHeight = opts.WeekdayMarginTop + svgFontSize + 4
	}
	legendHeight := 0
	if opts.LegendShow {
		legendHeight = opts.LegendMargin + svgSwatchSize + svgFontSize + 8
	}

	gridWidth := cols*(opts.CellWidth+opts.Gap) + opts.Gap
	gridHeight := rows*(opts.CellHeight+opts.Gap) + opts.Gap
	width := gridWidth
	if opts.ContainerWidth > 0 {
		width = opts.ContainerWidth
	}
	height := titleHeight + weekdayHeight + gridHeight + legendHeight

	var sb strings.Builder
	styleAttr := ""
	if opts.ContainerStyle != "" {
		styleAttr = fmt.Sprintf(` style=%q`, opts.ContainerStyle)
	}
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg"%s>`+"\n", width, height, styleAttr))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:sans-serif;font-size:%dpx;fill:%s}.value{font-family:sans-serif;font-size:%dpx;fill:%s}.title{font-family:sans-serif;font-size:%dpx;fill:%s;font-weight:bold}</style>`+"\n",
		svgFontSize, opts.TextColor, svgFontSize, opts.ValueTextColor, svgTitleFontSize, opts.TextColor))

	if opts.ShowMonth {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.Gap, svgTitleFontSize, v.Title))
	}

	top := titleHeight
	if opts.LegendShow && opts.LegendPosition == LegendTop {
		writeLegendSVG(&sb, v, top)
		top += legendHeight
	}

	if opts.ShowWeekday {
		y := top + opts.WeekdayMarginTop + svgFontSize
		for i, name := range v.WeekdayLabels {
			x := opts.Gap + i*(opts.CellWidth+opts.Gap)
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n", x, y, name))
		}
		top += weekdayHeight
	}

	for i, cell := range v.Cells {
		col := i % cols
		row := i / cols
		x := opts.Gap + col*(opts.CellWidth+opts.Gap)
		y := top + opts.Gap + row*(opts.CellHeight+opts.Gap)

		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-value="%s">`+"\n",
			x, y, opts.CellWidth, opts.CellHeight, cell.FillColor, cell.ISO, cell.FormattedValue))
		sb.WriteString(fmt.Sprintf(`    <title>%s</title>`+"\n", cell.Label))
		sb.WriteString(`  </rect>` + "\n")

		if opts.ShowDate && cell.InMonth {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%d</text>`+"\n",
				x+3, y+svgFontSize+1, cell.DayNumber))
		}
		if opts.ShowValue && cell.FormattedValue != "" {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="value">%s</text>`+"\n",
				x+3, y+opts.CellHeight-4, cell.FormattedValue))
		}
	}
	top += gridHeight

	if opts.LegendShow && opts.LegendPosition == LegendBottom {
		writeLegendSVG(&sb, v, top)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func writeLegendSVG(sb *strings.Builder, v View, top int) {
	opts := v.Options
	y := top + opts.LegendMargin
	x := opts.Gap
	for _, level := range v.Legend {
		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x, y, svgSwatchSize, svgSwatchSize, MixColor(opts.BaseColor, level.Intensity)))
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			x+svgSwatchSize+4, y+svgSwatchSize-1, level.Label))
		x += svgSwatchSize + 8 + 6*len(level.Label)
	}
}
