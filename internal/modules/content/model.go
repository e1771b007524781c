// README: Hand-authored narrative payloads for the deck.
package content

type Headline struct {
	Headline string `json:"headline"`
	Stat     string `json:"stat,omitempty"`
	Quote    string `json:"quote,omitempty"`
	Note     string `json:"note,omitempty"`
}

type Summary struct {
	Labor     Headline `json:"labor"`
	Safety    Headline `json:"safety"`
	Algorithm Headline `json:"algorithm"`
	Policy    Headline `json:"policy"`
}

type Voices struct {
	Driver      string `json:"driver"`
	FemaleRider string `json:"female_rider"`
	PlatformRep string `json:"platform_rep"`
}

type Milestone struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}
