package heatmap

import "math"

// ValueIndex maps an ISO date string to its finite value. It is the single
// source of truth for "does this date have data": dates with no finite value
// are simply absent. Dates that never parse never match a grid cell, so
// malformed input degrades to "no data" rather than an error.
type ValueIndex map[string]float64

// BuildValueIndex normalizes raw day values into a lookup table. NaN, infinite
// and missing values count as "no data". When the same date appears more than
// once the last entry wins, including a late entry that clears earlier data.
func BuildValueIndex(data []DayValue) ValueIndex {
	idx := make(ValueIndex, len(data))
	for _, d := range data {
		if d.Value == nil || math.IsNaN(*d.Value) || math.IsInf(*d.Value, 0) {
			delete(idx, d.Date)
			continue
		}
		idx[d.Date] = *d.Value
	}
	return idx
}

// Lookup returns the finite value recorded for the date, if any.
func (ix ValueIndex) Lookup(iso string) (float64, bool) {
	v, ok := ix[iso]
	return v, ok
}
