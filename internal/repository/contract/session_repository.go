package contract

import (
	"context"
	"time"
)

// SessionRepository maps opaque session tokens to user ids.
type SessionRepository interface {
	Save(ctx context.Context, token string, userId uint, ttl time.Duration) error
	// Get reports false when the token is unknown or expired.
	Get(ctx context.Context, token string) (uint, bool, error)
	Delete(ctx context.Context, token string) error
}
