// README: Scenario profiles; an in-memory table, read-only after init.
package pricing

type Store struct {
	profiles map[Scenario]Profile
}

func NewStore() *Store {
	return &Store{profiles: map[Scenario]Profile{
		ScenarioShort: {Scenario: ScenarioShort, DistanceKm: 4, Surge: 1.0},
		ScenarioPeak:  {Scenario: ScenarioPeak, DistanceKm: 10, Surge: 1.35},
		ScenarioLong:  {Scenario: ScenarioLong, DistanceKm: 18, Surge: 1.1},
	}}
}

func (s *Store) GetProfile(sc Scenario) (Profile, bool) {
	p, ok := s.profiles[sc]
	return p, ok
}
