// Package cache is the client-side resource cache. It holds the last known
// server payload per key, shares one in-flight fetch between every caller of
// the same key, serves stale data while revalidating, and notifies
// subscribers whenever an entry changes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/metrics"
)

// Status is the fetch status of an entry.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// Entry is a snapshot of one cached resource.
type Entry struct {
	Data   any
	Status Status
	// Err is the last fetch error. An entry that already held data keeps
	// StatusSuccess and its Data when a refetch fails.
	Err       error
	UpdatedAt time.Time
	Stale     bool
	Fetching  bool
	// Version increases on every data write and lets callers detect that an
	// entry was replaced since they last looked at it.
	Version uint64
}

// FetchFunc loads the authoritative payload for a key.
type FetchFunc func(ctx context.Context) (any, error)

// ErrMiss is returned by a Backend that has nothing stored for a key.
var ErrMiss = errors.New("cache: miss")

// Backend persists successful payloads so a restarted process can serve
// stale data immediately while it revalidates.
type Backend interface {
	Load(ctx context.Context, key Key) ([]byte, error)
	Save(ctx context.Context, key Key, payload []byte) error
	Delete(ctx context.Context, keys ...Key) error
}

// Options configures a Store.
type Options struct {
	// StaleTime is how long a successful payload counts as fresh.
	StaleTime time.Duration
	// Retry is the number of silent retries for transient failures.
	Retry int
	// RetryDelay is the initial backoff between retries.
	RetryDelay time.Duration
	// Backend is optional.
	Backend Backend
	Clock   clock.Clock
	Logger  *slog.Logger
}

// Store is the process-wide cache. The zero value is not usable; use New.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	nextSub int

	opts  Options
	clock clock.Clock
	log   *slog.Logger
}

type entry struct {
	Entry
	fetcher       FetchFunc
	call          *call
	subs          map[int]chan Entry
	invalidatedAt time.Time
}

type call struct {
	done chan struct{}
	val  any
	err  error
}

// New creates an empty store.
func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	return &Store{
		entries: make(map[Key]*entry),
		opts:    opts,
		clock:   opts.Clock,
		log:     opts.Logger,
	}
}

func (s *Store) entryLocked(key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{Entry: Entry{Status: StatusIdle}, subs: make(map[int]chan Entry)}
		s.entries[key] = e
	}
	return e
}

func (s *Store) staleLocked(e *entry) bool {
	return e.Stale || s.clock.Since(e.UpdatedAt) >= s.opts.StaleTime
}

// Get returns the current entry for key without triggering a fetch.
func (s *Store) Get(key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return e.Entry, true
}

// Fetch returns fresh cached data without calling fn. Stale data is returned
// immediately and refreshed in the background. Otherwise fn runs at most once
// per key at a time and every concurrent caller receives its result.
//
// The upstream request is detached from ctx: a caller that gives up gets
// ctx.Err() but the fetch continues for the remaining waiters and the cache.
func (s *Store) Fetch(ctx context.Context, key Key, fn FetchFunc) (any, error) {
	resource := key.Resource()

	s.mu.Lock()
	e := s.entryLocked(key)
	if fn != nil {
		e.fetcher = fn
	}
	if e.Status == StatusSuccess {
		data := e.Data
		if !s.staleLocked(e) {
			s.mu.Unlock()
			metrics.CacheLookupsTotal.WithLabelValues(resource, "hit").Inc()
			return data, nil
		}
		s.startLocked(ctx, key, e, e.fetcher)
		s.mu.Unlock()
		metrics.CacheLookupsTotal.WithLabelValues(resource, "stale").Inc()
		return data, nil
	}
	c, joined := s.startLocked(ctx, key, e, e.fetcher)
	s.mu.Unlock()

	if joined {
		metrics.CacheLookupsTotal.WithLabelValues(resource, "joined").Inc()
	} else {
		metrics.CacheLookupsTotal.WithLabelValues(resource, "miss").Inc()
	}
	return wait(ctx, c)
}

// Refetch ignores freshness and loads key from upstream, joining a fetch that
// is already in flight.
func (s *Store) Refetch(ctx context.Context, key Key, fn FetchFunc) (any, error) {
	s.mu.Lock()
	e := s.entryLocked(key)
	if fn != nil {
		e.fetcher = fn
	}
	c, _ := s.startLocked(ctx, key, e, e.fetcher)
	s.mu.Unlock()
	return wait(ctx, c)
}

func wait(ctx context.Context, c *call) (any, error) {
	select {
	case <-c.done:
		return c.val, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) startLocked(ctx context.Context, key Key, e *entry, fn FetchFunc) (*call, bool) {
	if e.call != nil {
		return e.call, true
	}
	c := &call{done: make(chan struct{})}
	if fn == nil {
		c.err = errors.New("cache: no fetcher registered for " + string(key))
		close(c.done)
		return c, false
	}
	e.call = c
	e.Fetching = true
	if e.Status != StatusSuccess {
		e.Status = StatusLoading
	}
	s.notifyLocked(e)
	go s.run(context.WithoutCancel(ctx), key, e, c, fn, s.clock.Now())
	return c, false
}

func (s *Store) run(ctx context.Context, key Key, e *entry, c *call, fn FetchFunc, started time.Time) {
	resource := key.Resource()
	begin := time.Now()
	val, err := s.retry(ctx, fn)
	metrics.CacheFetchDuration.WithLabelValues(resource).Observe(time.Since(begin).Seconds())

	stored := false
	s.mu.Lock()
	c.val, c.err = val, err
	e.call = nil
	e.Fetching = false
	if cur, ok := s.entries[key]; ok && cur == e {
		if err != nil {
			e.Err = err
			if e.Status == StatusSuccess {
				// Keep serving the last good payload and retry on the next read.
				e.Stale = true
			} else {
				e.Status = StatusError
			}
		} else {
			e.Data = val
			e.Status = StatusSuccess
			e.Err = nil
			e.UpdatedAt = s.clock.Now()
			e.Stale = e.invalidatedAt.After(started)
			e.Version++
			stored = true
		}
		s.notifyLocked(e)
	} else {
		s.log.Debug("Discarding late response for removed cache key", "key", key)
	}
	s.mu.Unlock()
	close(c.done)

	if err != nil {
		metrics.CacheFetchesTotal.WithLabelValues(resource, "error").Inc()
		s.log.Debug("Cache fetch failed", "key", key, "error", err)
		return
	}
	metrics.CacheFetchesTotal.WithLabelValues(resource, "success").Inc()
	if stored {
		s.persist(ctx, key, val)
	}
}

// retry runs fn, retrying transient failures with exponential backoff.
// Validation, auth and not-found errors are returned immediately.
func (s *Store) retry(ctx context.Context, fn FetchFunc) (any, error) {
	if s.opts.Retry <= 0 {
		return fn(ctx)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.opts.RetryDelay
	b.Reset()

	op := func() (any, error) {
		val, err := fn(ctx)
		if err != nil && !app_errors.IsTransient(err) {
			return nil, backoff.Permanent(err)
		}
		return val, err
	}
	return backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.opts.Retry)), ctx))
}

func (s *Store) persist(ctx context.Context, key Key, val any) {
	if s.opts.Backend == nil {
		return
	}
	payload, err := json.Marshal(val)
	if err != nil {
		s.log.Warn("Failed to encode cache snapshot", "key", key, "error", err)
		return
	}
	if err := s.opts.Backend.Save(ctx, key, payload); err != nil {
		s.log.Warn("Failed to save cache snapshot", "key", key, "error", err)
	}
}

// seed loads a persisted snapshot for an idle key and marks it stale so the
// next Fetch serves it immediately and revalidates in the background.
func (s *Store) seed(ctx context.Context, key Key, decode func([]byte) (any, error)) {
	if s.opts.Backend == nil {
		return
	}
	s.mu.Lock()
	e, ok := s.entries[key]
	idle := !ok || (e.Status == StatusIdle && e.call == nil)
	s.mu.Unlock()
	if !idle {
		return
	}

	payload, err := s.opts.Backend.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			s.log.Warn("Failed to load cache snapshot", "key", key, "error", err)
		}
		return
	}
	val, err := decode(payload)
	if err != nil {
		s.log.Warn("Discarding undecodable cache snapshot", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e = s.entryLocked(key)
	if e.Status != StatusIdle || e.call != nil {
		return
	}
	e.Data = val
	e.Status = StatusSuccess
	e.Stale = true
	e.Version++
	s.notifyLocked(e)
}

// SetData patches key with data as the authoritative value, typically after
// a mutation that returned the updated entity.
func (s *Store) SetData(key Key, data any) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.Data = data
	e.Status = StatusSuccess
	e.Err = nil
	e.UpdatedAt = s.clock.Now()
	e.Stale = false
	e.Version++
	s.notifyLocked(e)
	s.mu.Unlock()

	s.persist(context.Background(), key, data)
}

// Swap atomically replaces the data of key with fn(current) and returns the
// entry before and after the change. existed is false when the key held no
// data. fn must not call back into the store.
func (s *Store) Swap(key Key, fn func(current any) any) (before, after Entry, existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	before = e.Entry
	existed = e.Status == StatusSuccess
	e.Data = fn(e.Data)
	e.Status = StatusSuccess
	e.Err = nil
	e.Version++
	s.notifyLocked(e)
	return before, e.Entry, existed
}

// Restore puts a previously captured entry back. When existed is false the
// key is reset to idle. In-flight state is kept as is.
func (s *Store) Restore(key Key, snapshot Entry, existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	version := e.Version + 1
	fetching := e.Fetching
	if existed {
		e.Entry = snapshot
	} else {
		e.Entry = Entry{Status: StatusIdle}
	}
	e.Fetching = fetching
	e.Version = version
	s.notifyLocked(e)
}

// Patch rewrites the data of every successful entry matching pred with
// fn(current), leaving freshness untouched. It is used to reflect a confirmed
// single-entity change in every cached list that contains the entity.
func (s *Store) Patch(pred func(Key) bool, fn func(current any) any) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, e := range s.entries {
		if e.Status != StatusSuccess || !pred(k) {
			continue
		}
		e.Data = fn(e.Data)
		e.Version++
		s.notifyLocked(e)
		n++
	}
	return n
}

// Invalidate marks keys stale. Keys that have subscribers and a known fetcher
// are refetched in the background. It returns the number of keys marked.
func (s *Store) Invalidate(keys ...Key) int {
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return s.InvalidateWhere(func(k Key) bool {
		_, ok := set[k]
		return ok
	})
}

// InvalidatePrefix marks every key starting with prefix stale.
func (s *Store) InvalidatePrefix(prefix string) int {
	return s.InvalidateWhere(func(k Key) bool { return k.HasPrefix(prefix) })
}

// InvalidateWhere marks every key matching pred stale.
func (s *Store) InvalidateWhere(pred func(Key) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	n := 0
	for k, e := range s.entries {
		if !pred(k) {
			continue
		}
		n++
		e.Stale = true
		e.invalidatedAt = now
		s.notifyLocked(e)
		if len(e.subs) > 0 && e.fetcher != nil && e.call == nil {
			s.startLocked(context.Background(), k, e, e.fetcher)
		}
	}
	return n
}

// Remove drops keys entirely. Subscribers are closed and responses still in
// flight for these keys are discarded.
func (s *Store) Remove(keys ...Key) {
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	s.RemoveWhere(func(k Key) bool {
		_, ok := set[k]
		return ok
	})
}

// RemoveWhere drops every key matching pred.
func (s *Store) RemoveWhere(pred func(Key) bool) int {
	s.mu.Lock()
	var removed []Key
	for k, e := range s.entries {
		if !pred(k) {
			continue
		}
		for id, ch := range e.subs {
			delete(e.subs, id)
			close(ch)
		}
		delete(s.entries, k)
		removed = append(removed, k)
	}
	s.mu.Unlock()

	if s.opts.Backend != nil && len(removed) > 0 {
		if err := s.opts.Backend.Delete(context.Background(), removed...); err != nil {
			s.log.Warn("Failed to delete cache snapshots", "count", len(removed), "error", err)
		}
	}
	return len(removed)
}

// Subscribe returns a channel that receives the current entry and then every
// change to it. Only the latest state is buffered; a slow reader skips
// intermediate states. The returned function unsubscribes and closes the
// channel.
func (s *Store) Subscribe(key Key) (<-chan Entry, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	id := s.nextSub
	s.nextSub++
	ch := make(chan Entry, 1)
	ch <- e.Entry
	e.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(sub)
			}
		})
	}
}

func (s *Store) notifyLocked(e *entry) {
	for _, ch := range e.subs {
		select {
		case ch <- e.Entry:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- e.Entry
		}
	}
}
