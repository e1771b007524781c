// README: Day-earnings simulator; pure arithmetic over SimInput.
package earnings

import (
	"math"

	"ridedeck/internal/types"
)

const (
	// Fuel efficiency steps down once the day's distance reaches this many km.
	efficiencyThresholdKm = 120
	shortDayKmPerLiter    = 18
	longDayKmPerLiter     = 16

	maintenanceShare = 0.08
	platformFeeShare = 0.12

	stressBase         = 50
	stressHoursFreeCap = 10
	stressPerExtraHour = 4
	stressMin          = 0
	stressMax          = 100
)

// Simulate computes a day's earnings at full precision.
func Simulate(in SimInput) SimResult {
	gross := float64(in.KmDriven) * in.BaseFarePerKm
	gross *= 1 + in.AlgorithmBonus
	gross *= 1 - in.AlgorithmPenalty

	efficiency := FuelEfficiency(in.KmDriven)
	liters := float64(in.KmDriven) / float64(efficiency)
	fuel := liters * in.FuelCostPerLiter

	maintenance := maintenanceShare * gross
	fee := platformFeeShare * gross

	net := gross - (fuel + maintenance + fee)

	return SimResult{
		GrossIncome: types.Money(gross),
		FuelCost:    types.Money(fuel),
		Maintenance: types.Money(maintenance),
		PlatformFee: types.Money(fee),
		NetTakehome: types.Money(net),
		StressIndex: StressIndex(in.HoursOnline, in.AlgorithmPenalty),
	}
}

// FuelEfficiency returns km per liter for a day of kmDriven.
func FuelEfficiency(kmDriven int) int {
	if kmDriven < efficiencyThresholdKm {
		return shortDayKmPerLiter
	}
	return longDayKmPerLiter
}

// StressIndex is 50, plus 4 per hour beyond 10, plus half the truncated penalty
// percentage (integer division), clamped to [0, 100]. The terms are summed in
// float64 so huge inputs saturate at the clamp instead of wrapping.
func StressIndex(hoursOnline int, penalty float64) int {
	stress := float64(stressBase)
	if hoursOnline > stressHoursFreeCap {
		stress += float64(hoursOnline-stressHoursFreeCap) * stressPerExtraHour
	}
	if penalty > 0 {
		stress += math.Floor(math.Trunc(penalty*100) / 2)
	}
	return int(min(max(stress, stressMin), stressMax))
}
