package memory

import (
	"context"
	"time"

	"notetaking-web/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps sessions in process memory. Expired entries are
// purged by the cache janitor every cleanupInterval.
func NewSessionRepository(defaultTTL, cleanupInterval time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(defaultTTL, cleanupInterval),
	}
}

func (r *SessionRepository) Save(_ context.Context, token string, userId uint, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	r.cache.Set(token, userId, ttl)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (uint, bool, error) {
	if x, found := r.cache.Get(token); found {
		return x.(uint), true, nil
	}
	return 0, false, nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.cache.Delete(token)
	return nil
}
