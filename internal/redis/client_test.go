package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		client, err := redis.NewClient("", nil)
		assert.Nil(t, client)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("ping reachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		assert.NoError(t, redis.Ping(context.Background(), client))
	})

	t.Run("ping closed server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := redis.NewClient(mr.Addr(), nil)
		require.NoError(t, err)
		defer func() { _ = client.Close() }()
		mr.Close()

		err = redis.Ping(context.Background(), client)
		require.Error(t, err)
		assert.True(t, errors.IsUnavailable(err))
	})
}
