// Package main demonstrates the use of the heatmap package to assemble and
// render a monthly calendar heatmap.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/stsysd/koyomi/heatmap"
)

func main() {
	// Generate sample data for three months
	data := generateQuarterData()

	view := heatmap.Assemble(heatmap.Input{
		Start: "2025-01",
		Data:  data,
		Options: heatmap.Options{
			Range: &heatmap.RangeOptions{End: "2025-03", WeekStart: heatmap.WeekStartMonday},
			Cell:  &heatmap.CellOptions{ValueUnit: " steps"},
		},
		SelectedIndex: 1, // February
	})

	// Output to stdout
	fmt.Println(heatmap.GenerateMonthlyHeatmapSVG(view))
}

// generateQuarterData creates random activity data for 2025-01 through 2025-03
func generateQuarterData() []heatmap.DayValue {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	var data []heatmap.DayValue
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		// Higher activity on weekends, with occasional quiet days
		if rand.Intn(5) == 0 {
			continue
		}
		value := float64(rand.Intn(6000) + 1000)
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			value += float64(rand.Intn(6000))
		}
		data = append(data, heatmap.DayValue{
			Date:  current.Format("2006-01-02"),
			Value: &value,
		})
	}
	return data
}
