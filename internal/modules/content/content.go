package content

import "slices"

const RootMessage = "Ride-Hailing Deck API is running"

var summary = Summary{
	Labor: Headline{
		Headline: "Precarity & long hours",
		Stat:     ">75 hrs/week typical",
		Quote:    "Drivers often work 12–14 hrs to meet costs.",
	},
	Safety: Headline{
		Headline: "Gender & safety barriers",
		Stat:     "<1% women drivers",
		Note:     "Night travel perceived higher risk; safety features uneven.",
	},
	Algorithm: Headline{
		Headline: "Algorithmic management",
		Note:     "Visibility and earnings tied to ratings, GPS, and dispatch.",
	},
	Policy: Headline{
		Headline: "Policy gaps",
		Note:     "Limited social protection, transparency, and grievance routes.",
	},
}

var voices = Voices{
	Driver:      "Most days I’m online 12 to 14 hours just to cover fuel and payments. A small change in fare or a low rating can wipe out my profit. I keep driving because there aren’t many options.",
	FemaleRider: "Ride-hailing helps me move around the city, but nights are tricky. I check the driver rating, share my trip, and still feel uneasy. Safety features help, but trust is fragile.",
	PlatformRep: "We balance rider affordability and driver earnings using dynamic pricing and ratings. We’re testing safety tools and support features, but we’re also listening to feedback from local communities.",
}

var timeline = []Milestone{
	{Year: 2019, Label: "inDrive grows in major cities"},
	{Year: 2021, Label: "Fairwork reports highlight platform labor issues"},
	{Year: 2022, Label: "Women-only options expand; VSisters noted"},
	{Year: 2023, Label: "Yango expands; pricing algorithms mature"},
	{Year: 2024, Label: "New research on costs, hours, safety perceptions"},
	{Year: 2025, Label: "Policy debates on transparency & protections"},
}

// GetSummary returns the labour/safety/algorithm/policy headlines.
func GetSummary() Summary { return summary }

// GetVoices returns the three interview quotes.
func GetVoices() Voices { return voices }

// GetTimeline returns a copy of the milestones in chronological order.
func GetTimeline() []Milestone { return slices.Clone(timeline) }
