// Package mem holds bounded in-memory stores for short-lived state such as
// quiz sessions.
package mem

import (
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrNotFound = errors.New("mem: key not found or expired")

// Store is a bounded in-memory map whose entries expire ttl after their last
// write. Least recently used entries are evicted once capacity is reached.
type Store[V any] interface {
	Set(key string, value V)
	Get(key string) (V, bool)
	// Update runs fn on the current value under the store lock and writes
	// the result back. Returns ErrNotFound for missing or expired keys and
	// leaves the entry untouched when fn fails.
	Update(key string, fn func(V) (V, error)) (V, error)
	Delete(key string)
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu    sync.Mutex
	cache *lru.Cache[string, entry[V]]
	ttl   time.Duration
	now   func() time.Time
}

func NewTTLStore[V any](capacity int, ttl time.Duration) (*TTLStore[V], error) {
	if ttl <= 0 {
		return nil, errors.New("mem: ttl must be positive")
	}
	cache, err := lru.New[string, entry[V]](capacity)
	if err != nil {
		return nil, err
	}
	return &TTLStore[V]{cache: cache, ttl: ttl, now: time.Now}, nil
}

func (s *TTLStore[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, entry[V]{value: value, expiresAt: s.now().Add(s.ttl)})
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key)
}

func (s *TTLStore[V]) get(key string) (V, bool) {
	var zero V
	e, ok := s.cache.Get(key)
	if !ok {
		return zero, false
	}
	if !s.now().Before(e.expiresAt) {
		s.cache.Remove(key) // cleanup expired
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Update(key string, fn func(V) (V, error)) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.get(key)
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	s.cache.Add(key, entry[V]{value: next, expiresAt: s.now().Add(s.ttl)})
	return next, nil
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
}

// Len counts entries including expired ones not yet cleaned up.
func (s *TTLStore[V]) Len() int {
	return s.cache.Len()
}
