// Package notify хранит уведомления витрины (аналог всплывающих сообщений) до тех пор,
// пока посетитель их не заберёт.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Variant — оформление уведомления.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification — одно уведомление для посетителя.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// New создаёт уведомление с новым идентификатором.
func New(title, description string, variant Variant) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now().UTC(),
	}
}

// Feed — очередь уведомлений посетителей.
type Feed interface {
	Push(ctx context.Context, visitorID string, n Notification) error
	// Drain возвращает накопленные уведомления в порядке поступления и очищает очередь.
	Drain(ctx context.Context, visitorID string) ([]Notification, error)
	// Forget удаляет очередь посетителя.
	Forget(ctx context.Context, visitorID string) error
}

// DefaultMemoryLimit — сколько последних уведомлений хранит MemoryFeed на посетителя.
const DefaultMemoryLimit = 50

// MemoryFeed хранит уведомления в памяти процесса. Старые уведомления
// вытесняются, когда очередь превышает лимит.
type MemoryFeed struct {
	mu    sync.Mutex
	limit int
	items map[string][]Notification
}

// NewMemoryFeed создаёт ленту в памяти. limit <= 0 означает DefaultMemoryLimit.
func NewMemoryFeed(limit int) *MemoryFeed {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &MemoryFeed{limit: limit, items: make(map[string][]Notification)}
}

// Push реализует Feed.
func (f *MemoryFeed) Push(_ context.Context, visitorID string, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := append(f.items[visitorID], n)
	if len(q) > f.limit {
		q = q[len(q)-f.limit:]
	}
	f.items[visitorID] = q
	return nil
}

// Drain реализует Feed.
func (f *MemoryFeed) Drain(_ context.Context, visitorID string) ([]Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.items[visitorID]
	delete(f.items, visitorID)
	return q, nil
}

// Forget реализует Feed.
func (f *MemoryFeed) Forget(_ context.Context, visitorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, visitorID)
	return nil
}

// ListStore — списочные операции хранилища, см. cache.Cache.
type ListStore interface {
	Append(ctx context.Context, key string, value any, ttl time.Duration) error
	Drain(ctx context.Context, key string, decode func(raw []byte) error) error
	Invalidate(ctx context.Context, key string) error
}

// RedisFeed хранит уведомления списками в Redis, по ключу на посетителя.
type RedisFeed struct {
	store ListStore
	ttl   time.Duration
}

// NewRedisFeed создаёт ленту поверх store. Список посетителя живёт ttl с момента последнего уведомления.
func NewRedisFeed(store ListStore, ttl time.Duration) *RedisFeed {
	return &RedisFeed{store: store, ttl: ttl}
}

func feedKey(visitorID string) string {
	return "notifications:" + visitorID
}

// Push реализует Feed.
func (f *RedisFeed) Push(ctx context.Context, visitorID string, n Notification) error {
	const op = "notify.RedisFeed.Push"
	if err := f.store.Append(ctx, feedKey(visitorID), n, f.ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Drain реализует Feed.
func (f *RedisFeed) Drain(ctx context.Context, visitorID string) ([]Notification, error) {
	const op = "notify.RedisFeed.Drain"
	var out []Notification
	err := f.store.Drain(ctx, feedKey(visitorID), func(raw []byte) error {
		var n Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		out = append(out, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Forget реализует Feed.
func (f *RedisFeed) Forget(ctx context.Context, visitorID string) error {
	const op = "notify.RedisFeed.Forget"
	if err := f.store.Invalidate(ctx, feedKey(visitorID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
