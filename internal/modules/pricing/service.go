// README: Pricing service compares a fixed-fare quote with a negotiated offer.
package pricing

import (
	"fmt"

	"ridedeck/internal/types"
)

const (
	fixedPerKm      = 35.0
	fixedBookingFee = 60.0
	fairLowPerKm    = 30.0
	fairHighPerKm   = 55.0

	acceptFloor     = 0.05
	acceptSweetLow  = 0.75
	acceptSweetSpan = 0.2
	acceptCeiling   = 0.95
	acceptMaxDrop   = 0.4
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Compare validates req and returns the fixed fare, the acceptance probability of
// the proposed fare and who benefits. Out-of-range fares are rejected, never clamped.
func (s *Service) Compare(req ComparisonRequest) (ComparisonResult, error) {
	if req.Scenario == "" {
		req.Scenario = DefaultScenario
	}
	profile, ok := s.store.GetProfile(req.Scenario)
	if !ok {
		return ComparisonResult{}, &ValidationError{
			Field:   "scenario",
			Message: fmt.Sprintf("must be one of short, peak, long; got %q", req.Scenario),
		}
	}
	if !(req.ProposedFare >= MinProposedFare && req.ProposedFare <= MaxProposedFare) {
		return ComparisonResult{}, &ValidationError{
			Field:   "proposed_fare",
			Message: fmt.Sprintf("must be between %g and %g; got %g", MinProposedFare, MaxProposedFare, req.ProposedFare),
		}
	}

	km := profile.DistanceKm
	yango := FixedFare(profile)
	low, high := fairLowPerKm*km, fairHighPerKm*km

	return ComparisonResult{
		Scenario:        profile.Scenario,
		YangoFare:       yango,
		InDriveProposed: req.ProposedFare,
		AcceptanceProb:  types.Round(Acceptance(req.ProposedFare, low, high), 2),
		Beneficiary:     beneficiary(req.ProposedFare, yango),
		Km:              km,
		FairLow:         low,
		FairHigh:        high,
	}, nil
}

// FixedFare is the platform's quoted fare, rounded to whole units.
func FixedFare(p Profile) float64 {
	// explicit conversion keeps the product from being fused into a multiply-add
	return types.Round(float64(fixedPerKm*p.DistanceKm*p.Surge)+fixedBookingFee, 0)
}

// Acceptance is the piecewise probability that a driver accepts fare given the
// fair range [low, high]. Below the range it decays linearly to a floor, inside it
// rises from 0.75 to 0.95, above it falls by at most 0.4.
func Acceptance(fare, low, high float64) float64 {
	switch {
	case fare < low:
		return max(acceptFloor, fare/low)
	case fare > high:
		return acceptCeiling - min(acceptMaxDrop, (fare-high)/high)
	default:
		if high == low {
			return acceptSweetLow
		}
		return acceptSweetLow + acceptSweetSpan*((fare-low)/(high-low))
	}
}

func beneficiary(proposed, fixed float64) Beneficiary {
	switch {
	case proposed > fixed:
		return BeneficiaryDriver
	case proposed < fixed:
		return BeneficiaryPassenger
	default:
		return BeneficiaryBalanced
	}
}
