package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *ports.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	redisConfig := &ports.RedisConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(nil)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("ValidConfig", func(t *testing.T) {
		_, cfg := setupMockRedis(t)
		adapter, err := NewRedisCacheProviderAdapter(cfg)
		require.NoError(t, err)
		assert.NoError(t, adapter.Ping(context.Background()))
		assert.NoError(t, adapter.Close())
	})

	t.Run("Unreachable", func(t *testing.T) {
		mockRedis, cfg := setupMockRedis(t)
		mockRedis.Close()

		adapter, err := NewRedisCacheProviderAdapter(cfg)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsUpstreamError(err))
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "forecast:1", []byte("payload"), time.Minute))

		retrieved, err := adapter.Get(ctx, "forecast:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), retrieved)
		assert.True(t, mockRedis.Exists("tripplanner:forecast:1"))
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := adapter.Get(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "gone", []byte("x"), time.Minute))
		exists, err := adapter.Exists(ctx, "gone")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "gone"))
		exists, err = adapter.Exists(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl", []byte("v"), 100*time.Millisecond))
		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, mockRedis.Set("other-service:key", "keep"))
		require.NoError(t, adapter.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, adapter.Set(ctx, "b", []byte("2"), time.Minute))

		require.NoError(t, adapter.Clear(ctx))

		assert.False(t, mockRedis.Exists("tripplanner:a"))
		assert.False(t, mockRedis.Exists("tripplanner:b"))
		assert.True(t, mockRedis.Exists("other-service:key"))
	})

	t.Run("Stats", func(t *testing.T) {
		stats := adapter.GetStats()
		assert.Positive(t, stats.Hits)
		assert.Positive(t, stats.Misses)
		assert.Equal(t, stats.Hits+stats.Misses, stats.TotalOps)
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := adapter.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return adapter.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return adapter.Set(ctx, "k", nil, time.Minute) }},
		{"SetZeroTTL", func() error { return adapter.Set(ctx, "k", []byte("v"), 0) }},
		{"DeleteEmptyKey", func() error { return adapter.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := adapter.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}
