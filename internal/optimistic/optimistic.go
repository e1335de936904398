// Package optimistic applies a local change to a cached resource before the
// server confirms it, then either commits it (the key is invalidated so the
// authoritative state replaces the provisional one) or rolls it back to the
// snapshot taken before the change.
package optimistic

import (
	"context"
	"errors"

	"threadline/web/internal/cache"
	"threadline/web/internal/metrics"
)

// Cache is the part of cache.Store a mutation needs.
type Cache interface {
	Swap(key cache.Key, fn func(current any) any) (before, after cache.Entry, existed bool)
	Restore(key cache.Key, snapshot cache.Entry, existed bool)
	Get(key cache.Key) (cache.Entry, bool)
	Invalidate(keys ...cache.Key) int
}

// ErrPhase is returned when the phases are called out of order.
var ErrPhase = errors.New("optimistic: phase called out of order")

type phase int

const (
	phaseNew phase = iota
	phaseApplied
	phaseDone
)

// Mutation is a three-phase optimistic command on one cache key.
type Mutation[T any] struct {
	cache  Cache
	key    cache.Key
	revert func(current T) T

	phase    phase
	snapshot cache.Entry
	existed  bool
	applied  uint64
}

// New prepares a mutation on key.
func New[T any](c Cache, key cache.Key) *Mutation[T] {
	return &Mutation[T]{cache: c, key: key}
}

// WithRevert sets how to undo only this mutation's change when the entry was
// replaced after Apply (for example by another mutation or a refetch). The
// snapshot is only restored verbatim when nothing else touched the entry.
func (m *Mutation[T]) WithRevert(fn func(current T) T) *Mutation[T] {
	m.revert = fn
	return m
}

// Apply snapshots the entry and replaces its data with update(current).
// update must return a new value and leave current untouched.
func (m *Mutation[T]) Apply(update func(current T) T) error {
	if m.phase != phaseNew {
		return ErrPhase
	}
	before, after, existed := m.cache.Swap(m.key, func(cur any) any {
		v, _ := cur.(T)
		return update(v)
	})
	m.snapshot = before
	m.existed = existed
	m.applied = after.Version
	m.phase = phaseApplied
	return nil
}

// Commit marks the key stale so the next read converges to server truth.
func (m *Mutation[T]) Commit() error {
	if m.phase != phaseApplied {
		return ErrPhase
	}
	m.phase = phaseDone
	m.cache.Invalidate(m.key)
	metrics.OptimisticMutationsTotal.WithLabelValues("committed").Inc()
	return nil
}

// Rollback restores the pre-mutation snapshot. If the entry changed since
// Apply, only the revert function (if any) is applied to the current data.
func (m *Mutation[T]) Rollback() error {
	if m.phase != phaseApplied {
		return ErrPhase
	}
	m.phase = phaseDone
	metrics.OptimisticMutationsTotal.WithLabelValues("rolled_back").Inc()

	if cur, ok := m.cache.Get(m.key); ok && cur.Version == m.applied {
		m.cache.Restore(m.key, m.snapshot, m.existed)
		return nil
	}
	if m.revert != nil {
		m.cache.Swap(m.key, func(cur any) any {
			v, _ := cur.(T)
			return m.revert(v)
		})
	}
	return nil
}

// Run executes the full protocol: Apply, then the real request, then Commit
// on success or Rollback on failure. The request error is returned as is.
func Run[T any](ctx context.Context, m *Mutation[T], update func(current T) T, request func(ctx context.Context) error) error {
	if err := m.Apply(update); err != nil {
		return err
	}
	if err := request(ctx); err != nil {
		_ = m.Rollback()
		return err
	}
	return m.Commit()
}
