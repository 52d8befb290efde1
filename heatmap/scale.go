package heatmap

// IntensityScale normalizes day values onto [0,1]. The bounds come from every
// finite value in the index, not just the displayed month, so a given value
// keeps the same color no matter which month is on screen.
type IntensityScale struct {
	min, max float64
	empty    bool
}

// NewIntensityScale derives the scale bounds from the index.
func NewIntensityScale(idx ValueIndex) IntensityScale {
	s := IntensityScale{empty: true}
	for _, v := range idx {
		if s.empty {
			s.min, s.max = v, v
			s.empty = false
			continue
		}
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	return s
}

// Intensity maps a value onto [0,1]. With no observed values every lookup is 0;
// when all observed values are equal any present value saturates to 1.
func (s IntensityScale) Intensity(v float64) float64 {
	if s.empty {
		return 0
	}
	if s.min == s.max {
		return 1
	}
	t := (v - s.min) / (s.max - s.min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
