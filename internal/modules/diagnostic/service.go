// README: Diagnostic service builds the liveness/database report; it never fails.
package diagnostic

import (
	"context"
	"fmt"
	"time"
)

type Settings struct {
	URLSet  bool
	NameSet bool
	Timeout time.Duration
}

type Service struct {
	db       Database
	settings Settings
}

func NewService(db Database, settings Settings) *Service {
	if db == nil {
		db = NoopDatabase{}
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 3 * time.Second
	}
	return &Service{db: db, settings: settings}
}

// Report probes the database within the configured timeout and degrades every
// failure into a status string.
func (s *Service) Report(ctx context.Context) Report {
	rep := Report{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      settingStatus(s.settings.URLSet),
		DatabaseName:     settingStatus(s.settings.NameSet),
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}
	if !s.db.IsAvailable() {
		return rep
	}
	rep.Database = DatabaseAvailable

	names, err := s.listCollections(ctx)
	if err != nil {
		rep.Database = DatabaseErrorPrefix + truncateRunes(err.Error(), maxErrorRunes)
		return rep
	}
	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	if names != nil {
		rep.Collections = names
	}
	rep.Database = DatabaseWorking
	rep.ConnectionStatus = ConnectionConnected
	return rep
}

// listCollections runs the probe on its own goroutine so a backend that ignores
// ctx still cannot hold the caller past the deadline.
func (s *Service) listCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	type result struct {
		names []string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		names, err := s.db.ListCollections(ctx)
		done <- result{names: names, err: err}
	}()

	select {
	case r := <-done:
		return r.names, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) Close() error {
	return s.db.Close()
}

func settingStatus(set bool) string {
	if set {
		return SettingSet
	}
	return SettingNotSet
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
