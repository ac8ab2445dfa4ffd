package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/saya-shop/internal/config"
)

type testStruct struct {
	Name  string
	Coins int
}

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	expected := testStruct{Name: "Alice", Coins: 500}
	require.NoError(t, cache.Set(ctx, "visitor:1", expected, time.Minute))

	var actual testStruct
	found, err := cache.Get(ctx, "visitor:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out testStruct
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "key"))

	var out string
	found, err := cache.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	err := cache.Db.Set(ctx, "bad", []byte("not-json"), time.Minute).Err()
	require.NoError(t, err)

	var out testStruct
	found, err := cache.Get(ctx, "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestAppendAndDrain(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Append(ctx, "feed", testStruct{Name: "a", Coins: 1}, time.Hour))
	require.NoError(t, cache.Append(ctx, "feed", testStruct{Name: "b", Coins: 2}, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("feed"))

	var got []testStruct
	err := cache.Drain(ctx, "feed", func(raw []byte) error {
		var v testStruct
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []testStruct{{Name: "a", Coins: 1}, {Name: "b", Coins: 2}}, got)
	assert.False(t, mr.Exists("feed"))

	got = nil
	require.NoError(t, cache.Drain(ctx, "feed", func([]byte) error {
		t.Fatal("empty feed must not be decoded")
		return nil
	}))
}

func TestAppendExpires(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Append(ctx, "feed", "x", time.Minute))
	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("feed"))
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:9999",
		DialTimeout:  100 * time.Millisecond,
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}
