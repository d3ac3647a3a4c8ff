//go:build unit || e2e

package kvtest

import (
	"io"
	"log/slog"
	"testing"

	"plugin-storefront/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// NewMiniRedis starts an in-process redis and a client bound to it. Both are
// closed when the test ends.
func NewMiniRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	require.NoError(t, client.Ping(t.Context()).Err(), "miniredis ping failed")
	return client, mr
}

func Config() config.Config {
	return config.NewTestConfig()
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
