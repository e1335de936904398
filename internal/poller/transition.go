package poller

import (
	"slices"
	"sync"
)

// Transition fires a callback once each time a key moves from one of the
// `from` statuses to the `to` status. Observing `to` repeatedly, or observing
// it first without a prior `from` status, does not fire.
type Transition struct {
	mu   sync.Mutex
	from []string
	to   string
	fn   func(key string)
	last map[string]string
}

// OnTransition creates a Transition.
func OnTransition(from []string, to string, fn func(key string)) *Transition {
	return &Transition{from: from, to: to, fn: fn, last: make(map[string]string)}
}

// Observe records the latest status for key and reports whether the callback fired.
func (tr *Transition) Observe(key, status string) bool {
	tr.mu.Lock()
	prev, seen := tr.last[key]
	tr.last[key] = status
	fire := seen && status == tr.to && slices.Contains(tr.from, prev)
	tr.mu.Unlock()

	if fire && tr.fn != nil {
		tr.fn(key)
	}
	return fire
}

// Forget drops the recorded status for key.
func (tr *Transition) Forget(key string) {
	tr.mu.Lock()
	delete(tr.last, key)
	tr.mu.Unlock()
}
