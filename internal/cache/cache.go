// Package cache holds the latest fetched snapshot of each server
// collection. Views read through queries so that switching pages does
// not refetch, and a sync invalidates everything at once.
package cache

import (
	"context"
	"sync"
	"time"
)

// Query caches one collection snapshot. Concurrent Gets while a fetch
// is running share the single in-flight fetch.
type Query[T any] struct {
	mu        sync.Mutex
	name      string
	fetch     func(context.Context) (T, error)
	value     T
	have      bool
	fetchedAt time.Time
	inflight  chan struct{}
	lastErr   error
}

// NewQuery creates a query backed by fetch. name identifies the
// collection in errors and logs.
func NewQuery[T any](name string, fetch func(context.Context) (T, error)) *Query[T] {
	return &Query[T]{name: name, fetch: fetch}
}

// Name returns the collection name.
func (q *Query[T]) Name() string { return q.name }

// Get returns the cached snapshot, fetching it first if the cache is
// empty or invalidated. On fetch failure with a stale snapshot present,
// the stale snapshot is returned alongside the error.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	q.mu.Lock()
	if q.have {
		v := q.value
		q.mu.Unlock()
		return v, nil
	}
	return q.fetchLocked(ctx)
}

// Refresh discards the cached snapshot and fetches a fresh one.
func (q *Query[T]) Refresh(ctx context.Context) (T, error) {
	q.mu.Lock()
	q.have = false
	return q.fetchLocked(ctx)
}

// Cached returns the snapshot without fetching. ok is false when the
// cache is empty or invalidated.
func (q *Query[T]) Cached() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.value, q.have
}

// FetchedAt reports when the cached snapshot was fetched.
func (q *Query[T]) FetchedAt() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fetchedAt, q.have
}

// Invalidate marks the snapshot stale. The value is kept so callers
// can still render it while a refetch runs.
func (q *Query[T]) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.have = false
}

// fetchLocked runs or joins a fetch. Called with q.mu held; returns
// with it released.
func (q *Query[T]) fetchLocked(ctx context.Context) (T, error) {
	for {
		if ch := q.inflight; ch != nil {
			q.mu.Unlock()
			select {
			case <-ch:
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}
			q.mu.Lock()
			if q.have {
				v := q.value
				q.mu.Unlock()
				return v, nil
			}
			if q.lastErr != nil {
				v, err := q.value, q.lastErr
				q.mu.Unlock()
				return v, err
			}
			continue
		}

		ch := make(chan struct{})
		q.inflight = ch
		q.mu.Unlock()

		v, err := q.fetch(ctx)

		q.mu.Lock()
		q.inflight = nil
		q.lastErr = err
		if err == nil {
			q.value = v
			q.have = true
			q.fetchedAt = time.Now()
		}
		close(ch)
		if err != nil {
			stale := q.value
			q.mu.Unlock()
			return stale, err
		}
		q.mu.Unlock()
		return v, nil
	}
}

// Invalidator is anything whose cached state can be marked stale.
type Invalidator interface {
	Invalidate()
}

// Group invalidates a set of queries together, typically after a sync.
type Group struct {
	mu      sync.Mutex
	members []Invalidator
}

func (g *Group) Add(members ...Invalidator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = append(g.members, members...)
}

func (g *Group) InvalidateAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range g.members {
		m.Invalidate()
	}
}
