// Package cache memoizes documents that are read once per process.
package cache

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Memo loads a value at most once at a time and keeps it after the first
// success. Concurrent callers racing on a cold Memo share a single load and
// observe the same value. A failed load is not remembered, so the next caller
// retries.
//
// The shared load ignores the first caller's cancellation.
type Memo[T any] struct {
	load  func(ctx context.Context) (T, error)
	group singleflight.Group
	value atomic.Pointer[T]
}

func NewMemo[T any](load func(ctx context.Context) (T, error)) *Memo[T] {
	return &Memo[T]{load: load}
}

// Get returns the memoized value, loading it if needed.
func (m *Memo[T]) Get(ctx context.Context) (T, error) {
	if v := m.value.Load(); v != nil {
		return *v, nil
	}

	res, err, _ := m.group.Do("load", func() (any, error) {
		if v := m.value.Load(); v != nil {
			return *v, nil
		}
		v, err := m.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		m.value.Store(&v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// Loaded reports whether a value has been memoized.
func (m *Memo[T]) Loaded() bool {
	return m.value.Load() != nil
}
