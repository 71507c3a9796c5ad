package storage

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"
)

const (
	loginAttemptTTL  = 15 * time.Minute
	maxTrackedLogins = 10000
)

// LoginAttemptStorage counts failed logins per email so the boundary can
// throttle brute-force attempts. Entries fall out on their own after the TTL.
type LoginAttemptStorage struct {
	cache *ristretto.Cache[string, uint]
}

func NewLoginAttemptStorage() *LoginAttemptStorage {
	c, err := ristretto.NewCache(&ristretto.Config[string, uint]{
		NumCounters: maxTrackedLogins,
		MaxCost:     maxTrackedLogins,
		BufferItems: 64,
	})

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create login attempt storage")
	}

	return &LoginAttemptStorage{
		cache: c,
	}
}

func (s *LoginAttemptStorage) Failures(email string) uint {
	n, _ := s.cache.Get(email)
	return n
}

func (s *LoginAttemptStorage) RecordFailure(email string) {
	n, _ := s.cache.Get(email)
	s.cache.SetWithTTL(email, n+1, 1, loginAttemptTTL)
	s.cache.Wait()
}

func (s *LoginAttemptStorage) Reset(email string) {
	s.cache.Del(email)
	s.cache.Wait()
}
