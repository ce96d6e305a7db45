package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     mustPort(t, mr),
		PoolSize: 2,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "provider:candidates:atccc.providers", "[]", time.Minute))

	val, err := client.Get(ctx, "provider:candidates:atccc.providers")
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
	assert.Equal(t, time.Minute, mr.TTL("provider:candidates:atccc.providers"))

	require.NoError(t, client.Delete(ctx, "provider:candidates:atccc.providers"))
	_, err = client.Get(ctx, "provider:candidates:atccc.providers")
	assert.ErrorIs(t, err, redis.Nil)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
