package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"threadline/web/internal/cache"
)

// SnapshotStore persists cache payloads in redis so a restarted process can
// serve them as stale data while it revalidates. It implements cache.Backend.
type SnapshotStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewSnapshotStore(rdb *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl, prefix: "threadline:cache:"}
}

func (r *SnapshotStore) snapshotKey(key cache.Key) string { return r.prefix + string(key) }

func (r *SnapshotStore) Load(ctx context.Context, key cache.Key) ([]byte, error) {
	payload, err := r.rdb.Get(ctx, r.snapshotKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrMiss
		}
		return nil, fmt.Errorf("could not load snapshot %s: %w", key, err)
	}
	return payload, nil
}

func (r *SnapshotStore) Save(ctx context.Context, key cache.Key, payload []byte) error {
	return r.rdb.Set(ctx, r.snapshotKey(key), payload, r.ttl).Err()
}

func (r *SnapshotStore) Delete(ctx context.Context, keys ...cache.Key) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = r.snapshotKey(k)
	}
	return r.rdb.Del(ctx, names...).Err()
}
