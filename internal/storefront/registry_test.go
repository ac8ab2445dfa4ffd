package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
)

func newTestRegistry(size int, sched checkout.Scheduler, opts ...RegistryOption) (*Registry, *int) {
	created := 0
	r := NewRegistry(size, time.Hour, func(visitorID string) *Storefront {
		created++
		return New(visitorID, Deps{Scheduler: sched})
	}, opts...)
	return r, &created
}

func TestRegistry_GetCreatesOnce(t *testing.T) {
	r, created := newTestRegistry(10, nil)

	a := r.Get("v1")
	b := r.Get("v1")
	c := r.Get("v2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, *created)
	assert.Equal(t, 2, r.Len())

	got, ok := r.Lookup("v2")
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = r.Lookup("v3")
	assert.False(t, ok)
}

func TestRegistry_EvictionClosesStorefront(t *testing.T) {
	sched := checkout.NewManualScheduler()
	var evicted []string
	var counts []int
	r, _ := newTestRegistry(1, sched,
		WithEvictHook(func(id string) { evicted = append(evicted, id) }),
		WithCountHook(func(n int) { counts = append(counts, n) }),
	)

	first := r.Get("v1")
	_, err := first.Buy(0)
	require.NoError(t, err)
	_, _, err = first.SetField(checkout.FieldEmail, "a@b.com")
	require.NoError(t, err)
	_, err = first.SelectMethod(checkout.MethodFastPayment)
	require.NoError(t, err)
	_, err = first.Continue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, sched.Pending())

	r.Get("v2")

	assert.Equal(t, []string{"v1"}, evicted)
	assert.Zero(t, sched.Pending())
	assert.False(t, first.View().Checkout.Open)
	_, err = first.Buy(0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, []int{1, 1}, counts)
}

func TestRegistry_RemoveAndPurge(t *testing.T) {
	var evicted []string
	r, created := newTestRegistry(10, nil, WithEvictHook(func(id string) { evicted = append(evicted, id) }))

	sf := r.Get("v1")
	r.Get("v2")

	assert.True(t, r.Remove("v1"))
	assert.False(t, r.Remove("v1"))
	_, err := sf.Navigate("faq")
	assert.ErrorIs(t, err, ErrClosed)

	again := r.Get("v1")
	assert.NotSame(t, sf, again)
	assert.Equal(t, 3, *created)

	r.Purge()
	assert.Zero(t, r.Len())
	assert.ElementsMatch(t, []string{"v1", "v2", "v1"}, evicted)
}
