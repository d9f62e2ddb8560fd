package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects and closes", func(t *testing.T) {
		// Given: a running Redis
		ctx, st := suite.New(t)

		// When: connecting to it
		redisStorage, err := NewRedisStorage(ctx, st.Storage.Options().Addr, 1)

		// Then: the connection works until closed
		require.NoError(t, err)
		require.NoError(t, redisStorage.Connection.Ping(ctx).Err())
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		_, err := NewRedisStorage(context.Background(), "127.0.0.1:1", 0)

		assert.Error(t, err)
	})
}
