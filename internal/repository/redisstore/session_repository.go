// Package redisstore keeps sessions in Redis so several app instances can
// share them.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"notetaking-web/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type SessionRepository struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

func NewSessionRepository(rdb *redis.Client, defaultTTL time.Duration) contract.SessionRepository {
	return &SessionRepository{
		rdb:        rdb,
		defaultTTL: defaultTTL,
	}
}

func (r *SessionRepository) key(token string) string {
	return keyPrefix + token
}

func (r *SessionRepository) Save(ctx context.Context, token string, userId uint, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	if err := r.rdb.Set(ctx, r.key(token), strconv.FormatUint(uint64(userId), 10), ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (uint, bool, error) {
	val, err := r.rdb.Get(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load session: %w", err)
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return uint(id), true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
