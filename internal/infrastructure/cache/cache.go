package cache

import (
	"context"
	"sync"
	"time"
)

// Item representa um valor em cache com expiração
type Item[V any] struct {
	Value      V
	Expiration int64
}

// Cache é um cache em memória com expiração por item
type Cache[V any] struct {
	items map[string]Item[V]
	mu    sync.RWMutex
	now   func() time.Time
}

// New cria um cache. Se interval > 0, uma goroutine remove os itens expirados
// até o contexto ser cancelado.
func New[V any](ctx context.Context, interval time.Duration) *Cache[V] {
	c := &Cache[V]{
		items: make(map[string]Item[V]),
		now:   time.Now,
	}

	if interval > 0 {
		go c.janitor(ctx, interval)
	}
	return c
}

func (c *Cache[V]) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.DeleteExpired()
		}
	}
}

// Set grava o valor. duration <= 0 significa sem expiração.
func (c *Cache[V]) Set(key string, value V, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiration int64
	if duration > 0 {
		expiration = c.now().Add(duration).UnixNano()
	}
	c.items[key] = Item[V]{Value: value, Expiration: expiration}
}

// Get retorna o valor e se ele foi encontrado (e não expirou)
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || c.expired(item) {
		var zero V
		return zero, false
	}
	return item.Value, true
}

// Take remove e retorna o valor
func (c *Cache[V]) Take(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	delete(c.items, key)
	if !found || c.expired(item) {
		var zero V
		return zero, false
	}
	return item.Value, true
}

func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired remove todos os itens expirados
func (c *Cache[V]) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, v := range c.items {
		if c.expired(v) {
			delete(c.items, k)
		}
	}
}

func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[V]) expired(item Item[V]) bool {
	return item.Expiration > 0 && c.now().UnixNano() > item.Expiration
}
