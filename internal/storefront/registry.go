package storefront

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Factory создаёт витрину нового посетителя.
type Factory func(visitorID string) *Storefront

// Registry хранит витрины посетителей в ограниченном LRU с истечением срока.
// Вытесненная витрина закрывается, её таймеры отменяются.
type Registry struct {
	mu      sync.Mutex
	cache   *lru.LRU[string, *Storefront]
	factory Factory
	onEvict func(visitorID string)
	onCount func(n int)
}

// RegistryOption настраивает Registry.
type RegistryOption func(*Registry)

// WithEvictHook вызывает fn для каждого посетителя, чья витрина удалена из реестра.
// fn выполняется под блокировкой реестра и не должна обращаться к нему.
func WithEvictHook(fn func(visitorID string)) RegistryOption {
	return func(r *Registry) { r.onEvict = fn }
}

// WithCountHook сообщает число витрин после каждого изменения реестра.
func WithCountHook(fn func(n int)) RegistryOption {
	return func(r *Registry) { r.onCount = fn }
}

// NewRegistry создаёт реестр на size витрин; ttl отсчитывается от последнего обращения.
func NewRegistry(size int, ttl time.Duration, factory Factory, opts ...RegistryOption) *Registry {
	r := &Registry{factory: factory}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = lru.NewLRU[string, *Storefront](size, r.evicted, ttl)
	return r
}

// Get возвращает витрину посетителя, создавая её при первом обращении, и продлевает её срок.
func (r *Registry) Get(visitorID string) *Storefront {
	r.mu.Lock()
	defer r.mu.Unlock()

	sf, ok := r.cache.Get(visitorID)
	if !ok {
		// Просроченная запись ещё может лежать в кэше: закрываем её явно.
		r.cache.Remove(visitorID)
		sf = r.factory(visitorID)
	}
	r.cache.Add(visitorID, sf)
	r.count()
	return sf
}

// Lookup возвращает витрину, только если она уже есть в реестре.
func (r *Registry) Lookup(visitorID string) (*Storefront, bool) {
	return r.cache.Peek(visitorID)
}

// Remove удаляет и закрывает витрину посетителя.
func (r *Registry) Remove(visitorID string) bool {
	ok := r.cache.Remove(visitorID)
	r.count()
	return ok
}

// Len возвращает число витрин в реестре.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Purge закрывает все витрины.
func (r *Registry) Purge() {
	r.cache.Purge()
	r.count()
}

func (r *Registry) evicted(visitorID string, sf *Storefront) {
	sf.Close()
	if r.onEvict != nil {
		r.onEvict(visitorID)
	}
}

func (r *Registry) count() {
	if r.onCount != nil {
		r.onCount(r.cache.Len())
	}
}
