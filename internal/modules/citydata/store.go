// README: Read-only sample dataset, fixed at process start.
package citydata

// sampleRows is never mutated; callers receive copies.
var sampleRows = []CityRow{
	{City: "Islamabad", AvgWeeklyHours: 76, AvgTakehomeBeforeCosts: 28000, AvgTakehomeAfterCosts: 19000, PctFemaleDrivers: 1.0, PctUninsured: 78.0, Vehicle: VehicleCar},
	{City: "Lahore", AvgWeeklyHours: 82, AvgTakehomeBeforeCosts: 30000, AvgTakehomeAfterCosts: 19500, PctFemaleDrivers: 0.5, PctUninsured: 82.0, Vehicle: VehicleCar},
	{City: "Karachi", AvgWeeklyHours: 85, AvgTakehomeBeforeCosts: 31500, AvgTakehomeAfterCosts: 20000, PctFemaleDrivers: 0.7, PctUninsured: 80.0, Vehicle: VehicleCar},
	{City: "Islamabad", AvgWeeklyHours: 70, AvgTakehomeBeforeCosts: 24000, AvgTakehomeAfterCosts: 16500, PctFemaleDrivers: 1.2, PctUninsured: 76.0, Vehicle: VehicleBike},
	{City: "Lahore", AvgWeeklyHours: 78, AvgTakehomeBeforeCosts: 25500, AvgTakehomeAfterCosts: 17000, PctFemaleDrivers: 0.6, PctUninsured: 81.0, Vehicle: VehicleBike},
	{City: "Karachi", AvgWeeklyHours: 80, AvgTakehomeBeforeCosts: 26500, AvgTakehomeAfterCosts: 17400, PctFemaleDrivers: 0.8, PctUninsured: 79.0, Vehicle: VehicleBike},
}

type Store struct {
	rows []CityRow
}

// NewStore returns a Store over the built-in sample rows.
func NewStore() *Store {
	return &Store{rows: sampleRows}
}

// NewStoreWithRows serves a caller-supplied dataset instead of the sample rows.
func NewStoreWithRows(rows []CityRow) *Store {
	return &Store{rows: rows}
}

func (s *Store) All() []CityRow {
	out := make([]CityRow, len(s.rows))
	copy(out, s.rows)
	return out
}
