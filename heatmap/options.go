package heatmap

// WeekStart selects the weekday that begins each grid row.
type WeekStart string

// Supported week-start conventions.
const (
	WeekStartSunday WeekStart = "sun"
	WeekStartMonday WeekStart = "mon"
)

// Language selects the language of weekday and month labels.
type Language string

// Supported label languages.
const (
	LanguageEnglish Language = "en"
	LanguageKorean  Language = "ko"
)

// LegendPosition places the legend relative to the grid.
type LegendPosition string

// Supported legend positions.
const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
)

// Documented defaults applied by Resolve.
const (
	DefaultCellSize       = 44
	DefaultCellGap        = 4
	DefaultBaseColor      = "#3b82f6"
	DefaultEmptyColor     = "#FFECEC"
	DefaultTextColor      = "#172343"
	DefaultValueTextColor = "#ffffff"
)

var defaultLegendLabels = [legendLevelCount]string{"Low", "Medium", "High", "Very High"}

// Options is the caller-supplied configuration. Every group and every field is
// optional; Resolve fills the gaps with the documented defaults. Malformed
// values never raise an error, they silently fall back.
type Options struct {
	Range      *RangeOptions
	Cell       *CellOptions
	Labels     *LabelOptions
	Legend     *LegendOptions
	Container  *ContainerOptions
	Typography *TypographyOptions

	// OnDayClick, when set, marks in-month cells holding data as interactive
	// and receives the payload when the rendering surface reports a click.
	OnDayClick func(DayClick)
}

// RangeOptions bounds the month sequence.
type RangeOptions struct {
	// End is the last month to include, "YYYY-MM". Empty means the current
	// month at assembly time.
	End       string
	WeekStart WeekStart
}

// CellSizeOptions sizes one day cell. A lone Width or Height yields a square
// of that dimension; both present yield a rectangle; neither falls back to the
// default square.
type CellSizeOptions struct {
	Width  *int
	Height *int
}

// Square is shorthand for a square cell of the given side.
func Square(side int) *CellSizeOptions {
	return &CellSizeOptions{Width: &side, Height: &side}
}

// CellOptions styles the day cells.
type CellOptions struct {
	Size       *CellSizeOptions
	Gap        *int
	BaseColor  string
	EmptyColor string
	TextColor  string
	ShowDate   *bool
	ShowValue  *bool
	ValueUnit  string
}

// LabelOptions controls the month title and the weekday header.
type LabelOptions struct {
	ShowMonth        *bool
	ShowWeekday      *bool
	WeekdayLanguage  Language
	WeekdayMarginTop *int
}

// LegendOptions controls the legend block.
type LegendOptions struct {
	Show     *bool
	Position LegendPosition
	Labels   []string
	Margin   *int
}

// ContainerOptions styles the outer container.
type ContainerOptions struct {
	Width int
	Style string
}

// TypographyOptions styles the value text drawn on filled cells.
type TypographyOptions struct {
	TextColor string
}

// ResolvedOptions is the flattened, fully-defaulted form of Options. Every
// field holds a concrete value after Resolve; nothing downstream looks up a
// default again.
type ResolvedOptions struct {
	End       string
	WeekStart WeekStart

	CellWidth  int
	CellHeight int
	Gap        int
	BaseColor  string
	EmptyColor string
	TextColor  string
	ShowDate   bool
	ShowValue  bool
	ValueUnit  string

	ShowMonth        bool
	ShowWeekday      bool
	WeekdayLanguage  Language
	WeekdayMarginTop int

	LegendShow     bool
	LegendPosition LegendPosition
	LegendLabels   []string
	LegendMargin   int

	ContainerWidth int
	ContainerStyle string

	ValueTextColor string
}

// Resolve merges the option groups with the documented defaults into one
// fully-populated record.
func (o Options) Resolve() ResolvedOptions {
	r := ResolvedOptions{
		WeekStart:       WeekStartSunday,
		CellWidth:       DefaultCellSize,
		CellHeight:      DefaultCellSize,
		Gap:             DefaultCellGap,
		BaseColor:       DefaultBaseColor,
		EmptyColor:      DefaultEmptyColor,
		TextColor:       DefaultTextColor,
		ShowDate:        true,
		ShowValue:       true,
		ShowMonth:       true,
		ShowWeekday:     true,
		WeekdayLanguage: LanguageEnglish,
		LegendShow:      true,
		LegendPosition:  LegendBottom,
		LegendLabels:    defaultLegendLabels[:],
		ValueTextColor:  DefaultValueTextColor,
	}

	if g := o.Range; g != nil {
		r.End = g.End
		if g.WeekStart == WeekStartMonday {
			r.WeekStart = WeekStartMonday
		}
	}

	if g := o.Cell; g != nil {
		r.CellWidth, r.CellHeight = g.Size.resolve()
		if g.Gap != nil && *g.Gap >= 0 {
			r.Gap = *g.Gap
		}
		if validHexColor(g.BaseColor) {
			r.BaseColor = g.BaseColor
		}
		if validHexColor(g.EmptyColor) {
			r.EmptyColor = g.EmptyColor
		}
		if validHexColor(g.TextColor) {
			r.TextColor = g.TextColor
		}
		if g.ShowDate != nil {
			r.ShowDate = *g.ShowDate
		}
		if g.ShowValue != nil {
			r.ShowValue = *g.ShowValue
		}
		r.ValueUnit = g.ValueUnit
	}

	if g := o.Labels; g != nil {
		if g.ShowMonth != nil {
			r.ShowMonth = *g.ShowMonth
		}
		if g.ShowWeekday != nil {
			r.ShowWeekday = *g.ShowWeekday
		}
		if g.WeekdayLanguage == LanguageKorean {
			r.WeekdayLanguage = LanguageKorean
		}
		if g.WeekdayMarginTop != nil && *g.WeekdayMarginTop >= 0 {
			r.WeekdayMarginTop = *g.WeekdayMarginTop
		}
	}

	if g := o.Legend; g != nil {
		if g.Show != nil {
			r.LegendShow = *g.Show
		}
		if g.Position == LegendTop {
			r.LegendPosition = LegendTop
		}
		if g.Labels != nil {
			r.LegendLabels = g.Labels
		}
		if g.Margin != nil && *g.Margin >= 0 {
			r.LegendMargin = *g.Margin
		}
	}

	if g := o.Container; g != nil {
		if g.Width > 0 {
			r.ContainerWidth = g.Width
		}
		r.ContainerStyle = g.Style
	}

	if g := o.Typography; g != nil {
		if validHexColor(g.TextColor) {
			r.ValueTextColor = g.TextColor
		}
	}

	return r
}

// resolve applies the cell size rules. Non-positive dimensions count as
// malformed and fall back to the default square.
func (c *CellSizeOptions) resolve() (width, height int) {
	switch {
	case c == nil:
	case c.Width != nil && c.Height != nil:
		if *c.Width > 0 && *c.Height > 0 {
			return *c.Width, *c.Height
		}
	case c.Width != nil:
		if *c.Width > 0 {
			return *c.Width, *c.Width
		}
	case c.Height != nil:
		if *c.Height > 0 {
			return *c.Height, *c.Height
		}
	}
	return DefaultCellSize, DefaultCellSize
}
