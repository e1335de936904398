package poller_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/model"
	"threadline/web/internal/poller"
)

const interval = 3 * time.Second

// scriptedFetch returns the statuses in order, repeating the last one.
func scriptedFetch(calls *int32, statuses ...model.AnalysisStatus) poller.FetchFunc {
	return func(ctx context.Context) (any, error) {
		n := int(atomic.AddInt32(calls, 1))
		if n > len(statuses) {
			n = len(statuses)
		}
		return model.Design{ID: 1, AIAnalysisStatus: statuses[n-1]}, nil
	}
}

func analysisDone(data any) bool {
	return data.(model.Design).AIAnalysisStatus.IsTerminal()
}

func waitCalls(t *testing.T, calls *int32, want int32) {
	t.Helper()
	require.Eventually(t, func() bool { return atomic.LoadInt32(calls) == want }, time.Second, 2*time.Millisecond)
}

func TestScheduler_StopsOnTerminalState(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})

	var calls int32
	err := s.Start(context.Background(), poller.Job{
		Key:      "designs/detail?id=1",
		Interval: interval,
		Fetch:    scriptedFetch(&calls, model.AnalysisPending, model.AnalysisProcessing, model.AnalysisCompleted),
		Terminal: analysisDone,
	})
	require.NoError(t, err)
	done := s.Done("designs/detail?id=1")
	require.NotNil(t, done)

	waitCalls(t, &calls, 1)
	assert.Equal(t, poller.StateTracking, s.State("designs/detail?id=1"))

	mc.Add(interval)
	waitCalls(t, &calls, 2)

	mc.Add(interval)
	waitCalls(t, &calls, 3)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not exit after the terminal state")
	}
	assert.Equal(t, poller.StateSettled, s.State("designs/detail?id=1"))

	mc.Add(10 * interval)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "no fetch after settling")
}

func TestScheduler_ErrorsKeepPolling(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})

	var calls int32
	var mu sync.Mutex
	var seen []error
	err := s.Start(context.Background(), poller.Job{
		Key:      "validations/detail?id=2",
		Interval: interval,
		Fetch: func(ctx context.Context) (any, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("boom")
			}
			return model.Validation{Status: model.ValidationCompleted}, nil
		},
		Terminal: func(data any) bool { return data.(model.Validation).Status.IsTerminal() },
		OnResult: func(data any, err error) {
			mu.Lock()
			seen = append(seen, err)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	waitCalls(t, &calls, 1)
	mc.Add(interval)
	waitCalls(t, &calls, 2)

	<-s.Done("validations/detail?id=2")
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Error(t, seen[0])
	assert.NoError(t, seen[1])
}

func TestScheduler_VisibilityPausesAndResumes(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})

	var calls int32
	err := s.Start(context.Background(), poller.Job{
		Key:      "messages/thread?conversation=5",
		Interval: interval,
		Fetch: func(ctx context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			return []model.Message{}, nil
		},
	})
	require.NoError(t, err)
	defer s.StopAll()

	waitCalls(t, &calls, 1)

	s.SetVisible(false)
	assert.False(t, s.Visible())
	mc.Add(interval)
	mc.Add(interval)
	assert.Never(t, func() bool { return atomic.LoadInt32(&calls) > 1 }, 50*time.Millisecond, 5*time.Millisecond)

	s.SetVisible(true)
	waitCalls(t, &calls, 2)

	mc.Add(interval)
	waitCalls(t, &calls, 3)
	assert.Equal(t, poller.StateTracking, s.State("messages/thread?conversation=5"))
}

func TestScheduler_Stop(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})

	var calls int32
	require.NoError(t, s.Start(context.Background(), poller.Job{
		Key:      "messages/thread?conversation=8",
		Interval: interval,
		Fetch: func(ctx context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			return nil, nil
		},
	}))
	waitCalls(t, &calls, 1)

	assert.True(t, s.Stop("messages/thread?conversation=8"))
	assert.False(t, s.Stop("messages/thread?conversation=8"))
	assert.Equal(t, poller.StateNone, s.State("messages/thread?conversation=8"))

	mc.Add(5 * interval)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestScheduler_StartIsIdempotentWhileTracking(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})
	defer s.StopAll()

	var calls int32
	job := poller.Job{
		Key:      "messages/unread",
		Interval: time.Minute,
		Fetch: func(ctx context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			return model.UnreadCount{Count: 1}, nil
		},
	}
	require.NoError(t, s.Start(context.Background(), job))
	require.NoError(t, s.Start(context.Background(), job))

	waitCalls(t, &calls, 1)
	assert.Never(t, func() bool { return atomic.LoadInt32(&calls) > 1 }, 30*time.Millisecond, 5*time.Millisecond)
}

func TestScheduler_InvalidJob(t *testing.T) {
	s := poller.New(poller.Options{})
	err := s.Start(context.Background(), poller.Job{Key: "x"})
	assert.ErrorIs(t, err, poller.ErrInvalidJob)
}

func TestTransition_FiresOncePerTransition(t *testing.T) {
	var fired []string
	tr := poller.OnTransition(
		[]string{string(model.AnalysisPending), string(model.AnalysisProcessing)},
		string(model.AnalysisCompleted),
		func(key string) { fired = append(fired, key) },
	)

	assert.False(t, tr.Observe("d1", "pending"))
	assert.False(t, tr.Observe("d1", "processing"))
	assert.True(t, tr.Observe("d1", "completed"))
	assert.False(t, tr.Observe("d1", "completed"), "already completed")

	assert.False(t, tr.Observe("d2", "completed"), "no prior non-terminal status")
	assert.False(t, tr.Observe("d3", "pending"))
	assert.False(t, tr.Observe("d3", "failed"))

	assert.Equal(t, []string{"d1"}, fired)

	tr.Forget("d1")
	assert.False(t, tr.Observe("d1", "completed"))
}

func TestScheduler_StopWhere(t *testing.T) {
	s := poller.New(poller.Options{Clock: clock.NewMock()})
	fetch := func(ctx context.Context) (any, error) { return nil, nil }

	for _, key := range []string{"messages/thread?scope=a", "messages/unread?scope=a", "messages/thread?scope=b"} {
		require.NoError(t, s.Start(context.Background(), poller.Job{Key: key, Interval: interval, Fetch: fetch}))
	}

	n := s.StopWhere(func(key string) bool { return strings.HasSuffix(key, "scope=a") })
	assert.Equal(t, 2, n)
	assert.Equal(t, poller.StateNone, s.State("messages/thread?scope=a"))
	assert.Equal(t, poller.StateTracking, s.State("messages/thread?scope=b"))
	s.StopAll()
}

func TestScheduler_ParentCancelReleasesKey(t *testing.T) {
	s := poller.New(poller.Options{Clock: clock.NewMock()})
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx, poller.Job{Key: "k", Interval: interval, Fetch: fetch}))
	done := s.Done("k")
	waitCalls(t, &calls, 1)
	cancel()
	<-done

	assert.Equal(t, poller.StateNone, s.State("k"))
	require.NoError(t, s.Start(context.Background(), poller.Job{Key: "k", Interval: interval, Fetch: fetch}))
	waitCalls(t, &calls, 2)
	s.StopAll()
}

func TestScheduler_MaxLifetimeEndsTracking(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})

	var calls int32
	err := s.Start(context.Background(), poller.Job{
		Key:         "designs/detail?id=999",
		Interval:    interval,
		MaxLifetime: 10 * time.Second,
		Fetch: func(ctx context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			return nil, errors.New("not found")
		},
		Terminal: analysisDone,
	})
	require.NoError(t, err)
	done := s.Done("designs/detail?id=999")
	require.NotNil(t, done)
	waitCalls(t, &calls, 1)

	mc.Add(interval)
	waitCalls(t, &calls, 2)
	mc.Add(interval)
	waitCalls(t, &calls, 3)
	mc.Add(interval)
	waitCalls(t, &calls, 4)

	mc.Add(interval)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tracking did not expire")
	}
	assert.Equal(t, poller.StateNone, s.State("designs/detail?id=999"))

	after := atomic.LoadInt32(&calls)
	for range 5 {
		mc.Add(interval)
	}
	assert.Never(t, func() bool { return atomic.LoadInt32(&calls) > after }, 50*time.Millisecond, 5*time.Millisecond)

	require.NoError(t, s.Start(context.Background(), poller.Job{
		Key:      "designs/detail?id=999",
		Interval: interval,
		Fetch:    scriptedFetch(new(int32), model.AnalysisCompleted),
		Terminal: analysisDone,
	}))
	assert.Eventually(t, func() bool {
		return s.State("designs/detail?id=999") == poller.StateSettled
	}, time.Second, 2*time.Millisecond, "an expired key can be tracked again")
}

func TestScheduler_StartWhileHiddenWaitsForVisibility(t *testing.T) {
	mc := clock.NewMock()
	s := poller.New(poller.Options{Clock: mc})
	s.SetVisible(false)

	var calls int32
	err := s.Start(context.Background(), poller.Job{
		Key:      "messages/unread",
		Interval: interval,
		Fetch: func(ctx context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			return model.UnreadCount{}, nil
		},
	})
	require.NoError(t, err)
	defer s.StopAll()

	mc.Add(interval)
	assert.Never(t, func() bool { return atomic.LoadInt32(&calls) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	s.SetVisible(true)
	waitCalls(t, &calls, 1)
}
