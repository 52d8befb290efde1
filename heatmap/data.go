package heatmap

// DayValue holds one day's raw datum as supplied by the caller.
// Date is a naive "YYYY-MM-DD" calendar date with no timezone; Value is nil
// when the day carries no measurement.
type DayValue struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value,omitempty"`
}

// DayClick is the payload delivered to the configured day-click handler.
type DayClick struct {
	Date    string   `json:"date"`
	Value   *float64 `json:"value,omitempty"`
	InMonth bool     `json:"in_month"`
}
