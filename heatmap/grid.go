package heatmap

import (
	"time"

	"github.com/stsysd/koyomi/model"
)

const isoDate = "2006-01-02"

// Clock supplies the current time. It exists so the "no end month" default
// stays deterministic under test.
type Clock func() time.Time

// MonthDay is one cell slot in a month grid. InMonth is true only when the
// date belongs to the grid's owning month; padding days from the neighboring
// months carry false.
type MonthDay struct {
	ISO     string
	InMonth bool
}

// MonthGrid is the full-week padded grid for one calendar month. Days always
// holds a multiple of seven entries, starting on the configured week-start
// weekday and ending on the weekday just before it.
type MonthGrid struct {
	Year  int
	Month time.Month
	Days  []MonthDay
}

// Weekday returns the weekday that begins each grid row.
func (ws WeekStart) Weekday() time.Weekday {
	if ws == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// BuildMonthGrids returns one grid per calendar month from start to end
// inclusive. A nil end defaults to the current month read from the clock.
// If end precedes start the result is empty; Assemble substitutes a fallback
// grid for the start month so the widget still renders.
func BuildMonthGrids(start model.YearMonth, end *model.YearMonth, weekStart WeekStart, clock Clock) []MonthGrid {
	if clock == nil {
		clock = time.Now
	}
	to := model.YearMonthFromTime(clock())
	if end != nil {
		to = *end
	}

	var grids []MonthGrid
	for ym := start; !ym.After(to); ym = ym.Next() {
		grids = append(grids, buildMonthGrid(ym, weekStart))
	}
	return grids
}

func buildMonthGrid(ym model.YearMonth, weekStart WeekStart) MonthGrid {
	first := ym.First()
	last := first.AddDate(0, 1, -1)
	startWd := weekStart.Weekday()

	// back up to the most recent week-start on/before the 1st, and extend to
	// the day before the next week-start after the last day of the month
	lead := (int(first.Weekday()) - int(startWd) + 7) % 7
	tail := (int(startWd) - int(last.Weekday()) + 6) % 7
	gridStart := first.AddDate(0, 0, -lead)
	gridEnd := last.AddDate(0, 0, tail)

	g := MonthGrid{Year: ym.Year(), Month: ym.Month()}
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		g.Days = append(g.Days, MonthDay{
			ISO:     d.Format(isoDate),
			InMonth: d.Month() == ym.Month() && d.Year() == ym.Year(),
		})
	}
	return g
}
