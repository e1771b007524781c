// README: City labour-conditions row served to the deck's charts.
package citydata

type Vehicle string

const (
	VehicleCar  Vehicle = "car"
	VehicleBike Vehicle = "bike"
)

// CityRow is one city/vehicle aggregate. Currency fields are whole rupees.
type CityRow struct {
	City                   string  `json:"city"`
	AvgWeeklyHours         int     `json:"avg_weekly_hours"`
	AvgTakehomeBeforeCosts int     `json:"avg_takehome_before_costs"`
	AvgTakehomeAfterCosts  int     `json:"avg_takehome_after_costs"`
	PctFemaleDrivers       float64 `json:"pct_female_drivers"`
	PctUninsured           float64 `json:"pct_uninsured"`
	Vehicle                Vehicle `json:"vehicle"`
}

// Query narrows the dataset. Empty fields do not constrain.
type Query struct {
	City    string
	Vehicle string
}
