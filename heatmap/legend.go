package heatmap

const legendLevelCount = 4

// LegendLevel is one labeled reference point on the color scale.
type LegendLevel struct {
	Label     string
	Intensity float64
}

// BuildLegend returns exactly four levels at intensities 0, 1/3, 2/3 and 1,
// independent of the displayed month. Caller labels are used left to right;
// missing positions fall back to the default label set and extras are ignored.
func BuildLegend(labels []string) []LegendLevel {
	out := make([]LegendLevel, legendLevelCount)
	for i := range out {
		label := defaultLegendLabels[i]
		if i < len(labels) {
			label = labels[i]
		}
		out[i] = LegendLevel{
			Label:     label,
			Intensity: float64(i) / float64(legendLevelCount-1),
		}
	}
	return out
}
