// README: Day-earnings simulation input and result.
package earnings

import "ridedeck/internal/types"

// SimInput describes one driver's day. Bonus and penalty are fractions (0.05 = 5%).
// Values are not range-checked; negative or oversized inputs flow through the formulas.
type SimInput struct {
	HoursOnline      int
	FuelCostPerLiter float64
	KmDriven         int
	BaseFarePerKm    float64
	AlgorithmBonus   float64
	AlgorithmPenalty float64
}

// SimResult holds full-precision amounts; call Rounded before rendering.
type SimResult struct {
	GrossIncome types.Money `json:"gross_income"`
	FuelCost    types.Money `json:"fuel_cost"`
	Maintenance types.Money `json:"maintenance"`
	PlatformFee types.Money `json:"platform_fee"`
	NetTakehome types.Money `json:"net_takehome"`
	StressIndex int         `json:"stress_index"`
}

// Rounded returns a copy with every amount rounded to two decimals.
func (r SimResult) Rounded() SimResult {
	return SimResult{
		GrossIncome: r.GrossIncome.Round(),
		FuelCost:    r.FuelCost.Round(),
		Maintenance: r.Maintenance.Round(),
		PlatformFee: r.PlatformFee.Round(),
		NetTakehome: r.NetTakehome.Round(),
		StressIndex: r.StressIndex,
	}
}
