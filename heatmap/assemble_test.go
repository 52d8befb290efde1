package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellByISO(t *testing.T, v View, iso string) CellViewModel {
	t.Helper()
	for _, c := range v.Cells {
		if c.ISO == iso {
			return c
		}
	}
	t.Fatalf("no cell for %s", iso)
	return CellViewModel{}
}

func TestAssemble_SingleValueSaturates(t *testing.T) {
	v := Assemble(Input{
		Start: "2025-02",
		Data:  []DayValue{{Date: "2025-02-10", Value: ptr(100)}},
		Options: Options{
			Range: &RangeOptions{End: "2025-02", WeekStart: WeekStartMonday},
		},
	})

	require.Len(t, v.Months, 1)
	assert.Equal(t, "2025-01-27", v.Grid.Days[0].ISO)

	c := cellByISO(t, v, "2025-02-10")
	assert.True(t, c.InMonth)
	assert.Equal(t, 10, c.DayNumber)
	require.NotNil(t, c.RawValue)
	assert.Equal(t, 100.0, *c.RawValue)
	assert.Equal(t, 1.0, c.Intensity)
	assert.Equal(t, DefaultBaseColor, c.FillColor)
	assert.Equal(t, "100", c.FormattedValue)
	assert.Equal(t, "2025-02-10, value 100", c.Label)
	assert.False(t, c.Interactive, "no click handler configured")
}

func TestAssemble_EmptyData(t *testing.T) {
	v := Assemble(Input{
		Start: "2025-02",
		Options: Options{
			Range:      &RangeOptions{End: "2025-02"},
			OnDayClick: func(DayClick) {},
		},
	})

	for _, c := range v.Cells {
		assert.Equal(t, DefaultEmptyColor, c.FillColor, "cell %s", c.ISO)
		assert.Zero(t, c.Intensity, "cell %s", c.ISO)
		assert.False(t, c.Interactive, "cell %s", c.ISO)
		assert.Empty(t, c.FormattedValue, "cell %s", c.ISO)
	}
}

func TestAssemble_PaddingCellsNeverShowData(t *testing.T) {
	// 2025-03-01 is padding in the February grid with a Monday week start
	v := Assemble(Input{
		Start: "2025-02",
		Data:  []DayValue{{Date: "2025-03-01", Value: ptr(50)}},
		Options: Options{
			Range:      &RangeOptions{End: "2025-02", WeekStart: WeekStartMonday},
			OnDayClick: func(DayClick) {},
		},
	})

	c := cellByISO(t, v, "2025-03-01")
	assert.False(t, c.InMonth)
	assert.Nil(t, c.RawValue)
	assert.Equal(t, DefaultEmptyColor, c.FillColor)
	assert.Empty(t, c.FormattedValue)
	assert.Equal(t, "2025-03-01 (other month)", c.Label)
	assert.False(t, c.Interactive)
}

func TestAssemble_AccessibilityLabels(t *testing.T) {
	v := Assemble(Input{
		Start: "2025-02",
		Data:  []DayValue{{Date: "2025-02-10", Value: ptr(1234567.4)}},
		Options: Options{
			Range: &RangeOptions{End: "2025-02"},
			Cell:  &CellOptions{ValueUnit: " steps"},
		},
	})

	assert.Equal(t, "2025-02-10, value 1,234,567 steps", cellByISO(t, v, "2025-02-10").Label)
	assert.Equal(t, "2025-02-11, no data", cellByISO(t, v, "2025-02-11").Label)
	assert.Equal(t, "2025-01-31 (other month)", cellByISO(t, v, "2025-01-31").Label)
}

func TestAssemble_KoreanLabels(t *testing.T) {
	v := Assemble(Input{
		Start: "2025-02",
		Data:  []DayValue{{Date: "2025-02-10", Value: ptr(1234567.0)}},
		Options: Options{
			Range:  &RangeOptions{End: "2025-02", WeekStart: WeekStartMonday},
			Cell:   &CellOptions{ValueUnit: "회"},
			Labels: &LabelOptions{WeekdayLanguage: LanguageKorean},
		},
	})

	assert.Equal(t, "2025년 2월", v.Title)
	assert.Equal(t, []string{"월", "화", "수", "목", "금", "토", "일"}, v.WeekdayLabels)
	assert.Equal(t, "1,234,567회", cellByISO(t, v, "2025-02-10").FormattedValue)
}

func TestAssemble_WeekdayLabelRotation(t *testing.T) {
	v := Assemble(Input{Start: "2025-02", Options: Options{Range: &RangeOptions{End: "2025-02"}}})
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, v.WeekdayLabels)

	v = Assemble(Input{Start: "2025-02", Options: Options{
		Range: &RangeOptions{End: "2025-02", WeekStart: WeekStartMonday},
	}})
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, v.WeekdayLabels)
}

func TestAssemble_DefaultEndIsCurrentMonth(t *testing.T) {
	v := Assemble(Input{
		Start: "2025-02",
		Clock: fixedClock(2025, time.August, 31),
	})
	// Feb through Aug inclusive
	require.Len(t, v.Months, 7)
	assert.Equal(t, "February 2025", v.Months[0].Label)
	assert.Equal(t, "August 2025", v.Months[6].Label)
}

func TestAssemble_SelectedIndexClamped(t *testing.T) {
	in := Input{
		Start:   "2025-01",
		Options: Options{Range: &RangeOptions{End: "2025-03"}},
	}

	in.SelectedIndex = 99
	v := Assemble(in)
	assert.Equal(t, 2, v.SelectedIndex)
	assert.Equal(t, time.March, v.Grid.Month)

	in.SelectedIndex = -5
	v = Assemble(in)
	assert.Zero(t, v.SelectedIndex)
	assert.Equal(t, time.January, v.Grid.Month)
}

func TestAssemble_EndBeforeStartFallsBackToStartMonth(t *testing.T) {
	v := Assemble(Input{
		Start:   "2025-05",
		Options: Options{Range: &RangeOptions{End: "2025-03"}},
	})

	require.Len(t, v.Months, 1)
	assert.Equal(t, "May 2025", v.Title)
	assert.Equal(t, time.May, v.Grid.Month)
	assert.NotEmpty(t, v.Cells)
}

func TestAssemble_UnparsableStartFallsBackToCurrentMonth(t *testing.T) {
	v := Assemble(Input{
		Start: "banana",
		Clock: fixedClock(2025, time.June, 1),
	})
	assert.Equal(t, "June 2025", v.Title)
}

func TestAssemble_LegendFromOptions(t *testing.T) {
	v := Assemble(Input{
		Start:   "2025-02",
		Options: Options{Range: &RangeOptions{End: "2025-02"}, Legend: &LegendOptions{Labels: []string{"A"}}},
	})

	require.Len(t, v.Legend, 4)
	assert.Equal(t, "A", v.Legend[0].Label)
	assert.Equal(t, "Medium", v.Legend[1].Label)
	assert.Equal(t, "High", v.Legend[2].Label)
	assert.Equal(t, "Very High", v.Legend[3].Label)
}

func TestView_Click(t *testing.T) {
	var clicks []DayClick
	v := Assemble(Input{
		Start: "2025-02",
		Data:  []DayValue{{Date: "2025-02-10", Value: ptr(100)}},
		Options: Options{
			Range:      &RangeOptions{End: "2025-02"},
			OnDayClick: func(c DayClick) { clicks = append(clicks, c) },
		},
	})

	v.Click("2025-02-10")
	require.Len(t, clicks, 1)
	assert.Equal(t, "2025-02-10", clicks[0].Date)
	require.NotNil(t, clicks[0].Value)
	assert.Equal(t, 100.0, *clicks[0].Value)
	assert.True(t, clicks[0].InMonth)

	// days without data and padding days never dispatch
	v.Click("2025-02-11")
	v.Click("2025-02-01")
	assert.Len(t, clicks, 1)
}

func TestAssemble_IntensityIsRangeWide(t *testing.T) {
	// the scale spans the whole data range, so the same value keeps its color
	// on every displayed month
	in := Input{
		Start: "2025-01",
		Data: []DayValue{
			{Date: "2025-01-10", Value: ptr(0)},
			{Date: "2025-02-10", Value: ptr(50)},
			{Date: "2025-03-10", Value: ptr(100)},
		},
		Options: Options{Range: &RangeOptions{End: "2025-03"}},
	}

	in.SelectedIndex = 1
	feb := Assemble(in)
	assert.InDelta(t, 0.5, cellByISO(t, feb, "2025-02-10").Intensity, 1e-9)

	in.SelectedIndex = 2
	mar := Assemble(in)
	assert.Equal(t, 1.0, cellByISO(t, mar, "2025-03-10").Intensity)
}
