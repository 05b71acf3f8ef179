package bootstrap

import (
	"context"
	"testing"
	"time"

	"notetaking-web/internal/config"
	"notetaking-web/internal/dto"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(store, redisURL string) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Environment: "production"},
		Session: config.SessionConfig{Store: store, RedisURL: redisURL, TTL: time.Hour, CookieName: "sid"},
		Auth:    config.AuthConfig{MinPasswordLength: 6, BcryptCost: 4},
	}
}

func registerAndSerialize(t *testing.T, c *Container) string {
	t.Helper()
	ctx := context.Background()
	user, err := c.AuthService.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@test.com", Password: "secret123"})
	require.NoError(t, err)
	token, err := c.AuthService.Serialize(ctx, user)
	require.NoError(t, err)
	return token
}

func TestNewContainer_RedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)

	c := NewContainer(testutil.NewTestDB(t), testConfig("redis", "redis://"+mr.Addr()), logger.NewNopLogger())
	t.Cleanup(func() { _ = c.Close() })

	token := registerAndSerialize(t, c)
	assert.True(t, mr.Exists("session:"+token))
	assert.Equal(t, time.Hour, mr.TTL("session:"+token))

	assert.Equal(t, "sid", c.SessionCookie.Name)
	assert.True(t, c.SessionCookie.Secure)
}

func TestNewContainer_FallsBackToMemory(t *testing.T) {
	c := NewContainer(testutil.NewTestDB(t), testConfig("redis", "not a url"), logger.NewNopLogger())
	t.Cleanup(func() { _ = c.Close() })

	token := registerAndSerialize(t, c)
	user, err := c.AuthService.Deserialize(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", user.Email)
}
