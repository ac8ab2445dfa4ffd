package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/saya-shop/internal/cache"
	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
)

func newRedisFeed(t *testing.T) (*notify.RedisFeed, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return notify.NewRedisFeed(c, time.Hour), mr
}

func TestFeeds(t *testing.T) {
	feeds := map[string]func(t *testing.T) notify.Feed{
		"memory": func(*testing.T) notify.Feed { return notify.NewMemoryFeed(0) },
		"redis": func(t *testing.T) notify.Feed {
			f, _ := newRedisFeed(t)
			return f
		},
	}

	for name, newFeed := range feeds {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			feed := newFeed(t)

			first := notify.New("Ошибка", "Неверный CVV код", notify.VariantDestructive)
			second := notify.New("Оплата прошла успешно! 🎉", "500 монет зачислены на ваш счёт", notify.VariantDefault)
			require.NoError(t, feed.Push(ctx, "v1", first))
			require.NoError(t, feed.Push(ctx, "v1", second))
			require.NoError(t, feed.Push(ctx, "v2", first))

			got, err := feed.Drain(ctx, "v1")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, first.ID, got[0].ID)
			assert.Equal(t, second.Title, got[1].Title)
			assert.Equal(t, notify.VariantDefault, got[1].Variant)

			got, err = feed.Drain(ctx, "v1")
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, feed.Forget(ctx, "v2"))
			got, err = feed.Drain(ctx, "v2")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestMemoryFeed_Limit(t *testing.T) {
	ctx := context.Background()
	feed := notify.NewMemoryFeed(2)

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, feed.Push(ctx, "v", notify.New(title, "", notify.VariantDefault)))
	}

	got, err := feed.Drain(ctx, "v")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "c", got[1].Title)
}

func TestRedisFeed_Expires(t *testing.T) {
	ctx := context.Background()
	feed, mr := newRedisFeed(t)

	require.NoError(t, feed.Push(ctx, "v", notify.New("a", "", notify.VariantDefault)))
	mr.FastForward(2 * time.Hour)

	got, err := feed.Drain(ctx, "v")
	require.NoError(t, err)
	assert.Empty(t, got)
}
