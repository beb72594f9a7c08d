// apps/solver/internal/history/history.go
//
// Used-answers service: archive fetch with a day cache in front.

package history

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Source produces the current past-answers list.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// Cache stores one past-answers snapshot per date key.
type Cache interface {
	Snapshot(ctx context.Context, date string) ([]string, error)
	Save(ctx context.Context, date string, list []string) error
	Prune(ctx context.Context, date string) error
}

// Service loads the used-answers list, going to the network only when
// the cache has no snapshot for today. A nil Cache disables caching.
type Service struct {
	Source Source
	Cache  Cache
}

// DateKey returns the UTC day key snapshots are filed under.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Load returns the used-answers list for the day of now. With refresh
// set the cache is bypassed, though a successful fetch still updates it.
// Cache failures degrade to a warning; only the fetch itself can fail.
func (s *Service) Load(ctx context.Context, now time.Time, refresh bool) ([]string, error) {
	date := DateKey(now)

	if s.Cache != nil && !refresh {
		cached, err := s.Cache.Snapshot(ctx, date)
		if err != nil {
			log.Warn().Err(err).Msg("history cache read failed")
		} else if len(cached) > 0 {
			log.Debug().Int("words", len(cached)).Str("date", date).Msg("history cache hit")
			return cached, nil
		}
	}

	list, err := s.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Save(ctx, date, list); err != nil {
			log.Warn().Err(err).Msg("history cache write failed")
		} else if err := s.Cache.Prune(ctx, date); err != nil {
			log.Warn().Err(err).Msg("history cache prune failed")
		}
	}
	log.Info().Int("words", len(list)).Str("date", date).Msg("used answers loaded")
	return list, nil
}
