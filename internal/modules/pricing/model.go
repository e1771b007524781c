// README: Fixed-fare vs negotiated-fare comparison types.
package pricing

type Scenario string

const (
	ScenarioShort Scenario = "short"
	ScenarioPeak  Scenario = "peak"
	ScenarioLong  Scenario = "long"
)

type Beneficiary string

const (
	BeneficiaryDriver    Beneficiary = "driver"
	BeneficiaryPassenger Beneficiary = "passenger"
	BeneficiaryBalanced  Beneficiary = "balanced"
)

const (
	DefaultScenario     = ScenarioShort
	DefaultProposedFare = 300.0
	MinProposedFare     = 50.0
	MaxProposedFare     = 3000.0
)

// Profile fixes the trip distance and surge multiplier for a scenario.
type Profile struct {
	Scenario   Scenario
	DistanceKm float64
	Surge      float64
}

type ComparisonRequest struct {
	Scenario     Scenario
	ProposedFare float64
}

type ComparisonResult struct {
	Scenario        Scenario    `json:"scenario"`
	YangoFare       float64     `json:"yango_fare"`
	InDriveProposed float64     `json:"indrive_proposed"`
	AcceptanceProb  float64     `json:"acceptance_prob"`
	Beneficiary     Beneficiary `json:"beneficiary"`
	Km              float64     `json:"km"`

	FairLow  float64 `json:"-"`
	FairHigh float64 `json:"-"`
}
