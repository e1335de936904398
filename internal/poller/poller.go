// Package poller re-fetches resources on a fixed interval until they reach a
// terminal state. Polling pauses while the client is hidden and fires an
// immediate fetch when it becomes visible again.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"threadline/web/internal/metrics"
)

// State is the lifecycle of a tracked key.
type State string

const (
	// StateNone is reported for keys that are not tracked.
	StateNone     State = ""
	StateTracking State = "tracking"
	StateSettled  State = "settled"
)

// FetchFunc loads the current payload of the tracked resource.
type FetchFunc func(ctx context.Context) (any, error)

// Predicate reports whether a payload is terminal.
type Predicate func(data any) bool

// Never is the predicate for resources without a terminal state, such as an
// open message thread.
func Never(any) bool { return false }

// Job describes one tracked resource.
type Job struct {
	Key      string
	Interval time.Duration
	Fetch    FetchFunc
	// Terminal stops polling once it returns true. Nil means Never.
	Terminal Predicate
	// OnResult, if set, sees every fetch result.
	OnResult func(data any, err error)
	// MaxLifetime bounds how long the key is tracked without settling. Zero
	// means until Stop.
	MaxLifetime time.Duration
}

// ErrInvalidJob is returned by Start for a job it cannot schedule.
var ErrInvalidJob = errors.New("poller: job needs a key, a fetch function and a positive interval")

// Options configures a Scheduler.
type Options struct {
	Clock  clock.Clock
	Logger *slog.Logger
}

// Scheduler owns every polling loop of the process.
type Scheduler struct {
	mu       sync.Mutex
	clock    clock.Clock
	log      *slog.Logger
	visible  bool
	trackers map[string]*tracker
}

type tracker struct {
	job    Job
	ticker *clock.Ticker
	expiry *clock.Timer
	cancel context.CancelFunc
	wake   chan struct{}
	done   chan struct{}
	state  State
}

// New creates a visible scheduler with no tracked keys.
func New(opts Options) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scheduler{
		clock:    opts.Clock,
		log:      opts.Logger,
		visible:  true,
		trackers: make(map[string]*tracker),
	}
}

// Start begins tracking job.Key: one fetch right away, then one per interval
// until the terminal predicate holds, Stop is called, ctx is done or the job's
// MaxLifetime runs out. While the scheduler is hidden the first fetch waits
// for SetVisible(true). Starting a key that is already tracking is a no-op;
// starting a settled key re-subscribes it.
func (s *Scheduler) Start(ctx context.Context, job Job) error {
	if job.Key == "" || job.Fetch == nil || job.Interval <= 0 {
		return ErrInvalidJob
	}
	if job.Terminal == nil {
		job.Terminal = Never
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.trackers[job.Key]; ok && t.state == StateTracking {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &tracker{
		job:    job,
		ticker: s.clock.Ticker(job.Interval),
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		state:  StateTracking,
	}
	if job.MaxLifetime > 0 {
		t.expiry = s.clock.Timer(job.MaxLifetime)
	}
	s.trackers[job.Key] = t
	metrics.PollersActive.Inc()

	go s.run(ctx, t)
	return nil
}

// Stop clears the interval for key, e.g. when its view unmounts. A response
// that arrives afterwards is discarded. It reports whether key was tracked.
func (s *Scheduler) Stop(key string) bool {
	s.mu.Lock()
	t, ok := s.trackers[key]
	if ok {
		delete(s.trackers, key)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	t.cancel()
	<-t.done
	return true
}

// StopAll stops every tracked key and waits for the loops to exit.
func (s *Scheduler) StopAll() {
	s.StopWhere(func(string) bool { return true })
}

// StopWhere stops every tracked key matching pred, e.g. all keys of a session
// that logged out, and returns how many were stopped.
func (s *Scheduler) StopWhere(pred func(key string) bool) int {
	s.mu.Lock()
	var trackers []*tracker
	for k, t := range s.trackers {
		if !pred(k) {
			continue
		}
		trackers = append(trackers, t)
		delete(s.trackers, k)
	}
	s.mu.Unlock()

	for _, t := range trackers {
		t.cancel()
		<-t.done
	}
	return len(trackers)
}

// State returns the lifecycle state of key.
func (s *Scheduler) State(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.trackers[key]; ok {
		return t.state
	}
	return StateNone
}

// Done returns a channel closed when the loop for key exits, or nil when the
// key is not tracked.
func (s *Scheduler) Done(key string) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.trackers[key]; ok {
		return t.done
	}
	return nil
}

// SetVisible pauses (false) or resumes (true) every loop. Resuming triggers an
// immediate fetch for each tracking key.
func (s *Scheduler) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumed := visible && !s.visible
	s.visible = visible
	if !resumed {
		return
	}
	for _, t := range s.trackers {
		if t.state != StateTracking {
			continue
		}
		select {
		case t.wake <- struct{}{}:
		default:
		}
	}
}

// Visible reports the current visibility.
func (s *Scheduler) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Scheduler) run(ctx context.Context, t *tracker) {
	defer close(t.done)
	defer s.release(t)
	defer t.ticker.Stop()
	defer metrics.PollersActive.Dec()

	var expired <-chan time.Time
	if t.expiry != nil {
		defer t.expiry.Stop()
		expired = t.expiry.C
	}

	if s.Visible() && s.poll(ctx, t) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-expired:
			s.log.Info("Tracking expired before the resource settled", "key", t.job.Key, "lifetime", t.job.MaxLifetime)
			return
		case <-t.ticker.C:
			if !s.Visible() {
				continue
			}
		case <-t.wake:
		}
		if s.poll(ctx, t) {
			return
		}
	}
}

// release forgets a loop that ended without settling, so the key can be
// started again.
func (s *Scheduler) release(t *tracker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.trackers[t.job.Key]; ok && cur == t && t.state == StateTracking {
		delete(s.trackers, t.job.Key)
	}
}

// poll runs one fetch and reports whether the loop should exit.
func (s *Scheduler) poll(ctx context.Context, t *tracker) bool {
	data, err := t.job.Fetch(ctx)
	if ctx.Err() != nil {
		return true
	}
	if t.job.OnResult != nil {
		t.job.OnResult(data, err)
	}
	if err != nil {
		metrics.PollTicksTotal.WithLabelValues("error").Inc()
		s.log.Debug("Poll fetch failed, will retry on next tick", "key", t.job.Key, "error", err)
		return false
	}
	metrics.PollTicksTotal.WithLabelValues("success").Inc()

	if !t.job.Terminal(data) {
		return false
	}
	s.mu.Lock()
	t.state = StateSettled
	s.mu.Unlock()
	s.log.Debug("Tracked resource reached a terminal state", "key", t.job.Key)
	return true
}
