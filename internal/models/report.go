package models

// DayTotal is one day of the weekly calendar view: the total tracked hours for
// that day plus per-project subtotals, all rounded to one decimal place.
type DayTotal struct {
	Day       string             `json:"day"`
	Hours     float64            `json:"hours"`
	ByProject map[string]float64 `json:"by_project"`
}

// MonthTotal is one month of the yearly project summary.
type MonthTotal struct {
	Month string `json:"month"`
	Hours int    `json:"hours"`
}
