// README: Chart data filtering over the static dataset.
package citydata

import "strings"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Filter keeps dataset order. City matches case-insensitively, vehicle exactly.
// An unmatched filter yields an empty, non-nil slice.
func (s *Service) Filter(q Query) []CityRow {
	rows := s.store.All()
	out := make([]CityRow, 0, len(rows))
	for _, r := range rows {
		if q.City != "" && !strings.EqualFold(r.City, q.City) {
			continue
		}
		if q.Vehicle != "" && string(r.Vehicle) != q.Vehicle {
			continue
		}
		out = append(out, r)
	}
	return out
}
