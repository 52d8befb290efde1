package heatmap

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stsysd/koyomi/model"
)

// CellViewModel carries every attribute a rendering surface needs to paint one
// grid cell. It is recomputed from scratch whenever any input changes and owns
// no identity beyond its ISO date within one pass.
type CellViewModel struct {
	ISO       string
	InMonth   bool
	DayNumber int

	// RawValue is nil when the date has no finite value, or when the cell is
	// padding from a neighboring month (padding never shows data).
	RawValue  *float64
	Intensity float64
	FillColor string

	// FormattedValue is the rounded, locale-grouped value plus the configured
	// unit; empty when there is nothing to show.
	FormattedValue string

	// Label is the accessibility text for the cell.
	Label string

	Interactive bool
}

// MonthOption is one entry of the month switcher.
type MonthOption struct {
	Year  int
	Month time.Month
	Label string
}

// Input is everything the engine consumes in one recomputation pass. The
// selected index is host-owned state passed in and handed back clamped, so the
// engine itself stays a pure function.
type Input struct {
	// Start is the first month of the range, "YYYY-MM". An unparsable start
	// falls back to the current month.
	Start         string
	Data          []DayValue
	Options       Options
	SelectedIndex int
	Clock         Clock
}

// View is the fully assembled presentation model for the selected month.
type View struct {
	Options       ResolvedOptions
	Months        []MonthOption
	SelectedIndex int
	Title         string
	Grid          MonthGrid
	Cells         []CellViewModel
	WeekdayLabels []string
	Legend        []LegendLevel

	onClick func(DayClick)
}

var weekdayNames = map[Language][7]string{
	LanguageEnglish: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LanguageKorean:  {"일", "월", "화", "수", "목", "금", "토"},
}

// Assemble recomputes the whole presentation model from scratch. It never
// fails: malformed inputs degrade to the documented defaults so the widget
// always renders something.
func Assemble(in Input) View {
	clock := in.Clock
	if clock == nil {
		clock = time.Now
	}
	opts := in.Options.Resolve()

	start, err := model.NewYearMonth(in.Start)
	if err != nil {
		start = model.YearMonthFromTime(clock())
	}
	var end *model.YearMonth
	if opts.End != "" {
		if ym, err := model.NewYearMonth(opts.End); err == nil {
			end = &ym
		}
	}

	grids := BuildMonthGrids(start, end, opts.WeekStart, clock)
	if len(grids) == 0 {
		// end precedes start: still render the start month
		grids = []MonthGrid{buildMonthGrid(start, opts.WeekStart)}
	}

	selected := in.SelectedIndex
	if selected < 0 {
		selected = 0
	}
	if selected >= len(grids) {
		selected = len(grids) - 1
	}
	grid := grids[selected]

	idx := BuildValueIndex(in.Data)
	scale := NewIntensityScale(idx)
	printer := message.NewPrinter(labelLanguage(opts.WeekdayLanguage))
	clickable := in.Options.OnDayClick != nil

	cells := make([]CellViewModel, 0, len(grid.Days))
	for _, day := range grid.Days {
		cells = append(cells, assembleCell(day, idx, scale, opts, printer, clickable))
	}

	months := make([]MonthOption, 0, len(grids))
	for _, g := range grids {
		months = append(months, MonthOption{
			Year:  g.Year,
			Month: g.Month,
			Label: monthTitle(g.Year, g.Month, opts.WeekdayLanguage),
		})
	}

	return View{
		Options:       opts,
		Months:        months,
		SelectedIndex: selected,
		Title:         monthTitle(grid.Year, grid.Month, opts.WeekdayLanguage),
		Grid:          grid,
		Cells:         cells,
		WeekdayLabels: weekdayLabels(opts.WeekStart, opts.WeekdayLanguage),
		Legend:        BuildLegend(opts.LegendLabels),
		onClick:       in.Options.OnDayClick,
	}
}

// Click dispatches a pointer event on the cell with the given ISO date to the
// configured handler. Non-interactive cells are ignored.
func (v View) Click(iso string) {
	if v.onClick == nil {
		return
	}
	for _, c := range v.Cells {
		if c.ISO == iso && c.Interactive {
			v.onClick(DayClick{Date: c.ISO, Value: c.RawValue, InMonth: c.InMonth})
			return
		}
	}
}

func assembleCell(day MonthDay, idx ValueIndex, scale IntensityScale, opts ResolvedOptions, p *message.Printer, clickable bool) CellViewModel {
	cell := CellViewModel{
		ISO:       day.ISO,
		InMonth:   day.InMonth,
		DayNumber: dayNumber(day.ISO),
		FillColor: opts.EmptyColor,
	}
	if !day.InMonth {
		cell.Label = fmt.Sprintf("%s (other month)", day.ISO)
		return cell
	}
	v, ok := idx.Lookup(day.ISO)
	if !ok {
		cell.Label = fmt.Sprintf("%s, no data", day.ISO)
		return cell
	}
	raw := v
	cell.RawValue = &raw
	cell.Intensity = scale.Intensity(v)
	cell.FillColor = MixColor(opts.BaseColor, cell.Intensity)
	cell.FormattedValue = formatValue(p, v, opts.ValueUnit)
	cell.Label = fmt.Sprintf("%s, value %s", day.ISO, cell.FormattedValue)
	cell.Interactive = clickable
	return cell
}

// weekdayLabels returns the seven weekday names rotated so the configured
// week-start weekday comes first.
func weekdayLabels(ws WeekStart, lang Language) []string {
	names := weekdayNames[lang]
	offset := int(ws.Weekday())
	out := make([]string, 7)
	for i := range out {
		out[i] = names[(offset+i)%7]
	}
	return out
}

func monthTitle(year int, month time.Month, lang Language) string {
	if lang == LanguageKorean {
		return fmt.Sprintf("%d년 %d월", year, int(month))
	}
	return fmt.Sprintf("%s %d", month, year)
}

func labelLanguage(lang Language) language.Tag {
	if lang == LanguageKorean {
		return language.Korean
	}
	return language.English
}

func formatValue(p *message.Printer, v float64, unit string) string {
	s := p.Sprintf("%d", int64(math.Round(v)))
	if unit != "" {
		s += unit
	}
	return s
}

func dayNumber(iso string) int {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return 0
	}
	return t.Day()
}
