package cache

import (
	"context"
	"encoding/json"
	"fmt"
)

// Query is the typed form of Store.Fetch. When the store has a backend, an
// idle key is first seeded from its persisted snapshot.
func Query[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	s.seed(ctx, key, decoder[T])
	val, err := s.Fetch(ctx, key, adapt(fetch))
	return typed[T](key, val, err)
}

// Reload is the typed form of Store.Refetch.
func Reload[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	val, err := s.Refetch(ctx, key, adapt(fetch))
	return typed[T](key, val, err)
}

// Peek returns the cached data for key when it holds a T.
func Peek[T any](s *Store, key Key) (T, bool) {
	var zero T
	e, ok := s.Get(key)
	if !ok || e.Status != StatusSuccess {
		return zero, false
	}
	v, ok := e.Data.(T)
	return v, ok
}

func adapt[T any](fetch func(ctx context.Context) (T, error)) FetchFunc {
	if fetch == nil {
		return nil
	}
	return func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
}

func typed[T any](key Key, val any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	v, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %s holds %T", key, val)
	}
	return v, nil
}

func decoder[T any](payload []byte) (any, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}
