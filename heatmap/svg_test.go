package heatmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assembleFebruary(t *testing.T, opts Options) View {
	t.Helper()
	if opts.Range == nil {
		opts.Range = &RangeOptions{End: "2025-02"}
	}
	return Assemble(Input{
		Start:   "2025-02",
		Data:    []DayValue{{Date: "2025-02-10", Value: ptr(100)}},
		Options: opts,
	})
}

func TestGenerateMonthlyHeatmapSVG(t *testing.T) {
	svg := GenerateMonthlyHeatmapSVG(assembleFebruary(t, Options{}))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `data-date="2025-02-10"`)
	assert.Contains(t, svg, `fill="`+DefaultBaseColor+`"`)
	assert.Contains(t, svg, `<title>2025-02-10, value 100</title>`)
	assert.Contains(t, svg, `<title>2025-02-11, no data</title>`)
	assert.Contains(t, svg, ">February 2025<")
	assert.Contains(t, svg, ">Sun<")
	assert.Contains(t, svg, ">Low<")
	assert.Contains(t, svg, ">Very High<")
}

func TestGenerateMonthlyHeatmapSVG_HiddenSections(t *testing.T) {
	hide := false
	svg := GenerateMonthlyHeatmapSVG(assembleFebruary(t, Options{
		Labels: &LabelOptions{ShowMonth: &hide, ShowWeekday: &hide},
		Legend: &LegendOptions{Show: &hide},
	}))

	assert.NotContains(t, svg, ">February 2025<")
	assert.NotContains(t, svg, ">Sun<")
	assert.NotContains(t, svg, ">Low<")
	// cells still render
	assert.Contains(t, svg, `data-date="2025-02-10"`)
}

func TestGenerateMonthlyHeatmapSVG_LegendTop(t *testing.T) {
	svg := GenerateMonthlyHeatmapSVG(assembleFebruary(t, Options{
		Legend: &LegendOptions{Position: LegendTop},
	}))

	legendAt := strings.Index(svg, ">Low<")
	firstCellAt := strings.Index(svg, "data-date=")
	assert.Greater(t, firstCellAt, legendAt, "legend should precede the grid")
}

func TestGenerateMonthlyHeatmapSVG_ContainerOverrides(t *testing.T) {
	svg := GenerateMonthlyHeatmapSVG(assembleFebruary(t, Options{
		Container: &ContainerOptions{Width: 400, Style: "margin:0"},
	}))

	assert.Contains(t, svg, `<svg width="400"`)
	assert.Contains(t, svg, `style="margin:0"`)
}
