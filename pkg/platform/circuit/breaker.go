// Package circuit trips after consecutive failures so callers can switch to
// a fallback path until the primary recovers.
package circuit

import (
	"sync"
	"time"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// StateChange reports a transition caused by the last recorded outcome.
type StateChange struct {
	Opened bool
	Closed bool
}

// Breaker opens after a run of failures and closes after a run of
// successes observed while open.
type Breaker struct {
	name             string
	failuresToTrip   int
	successesToReset int
	probeEvery       time.Duration

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	lastProbe time.Time
}

type Option func(*Breaker)

// WithFailureThreshold defaults to 5.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failuresToTrip = n
		}
	}
}

// WithSuccessThreshold defaults to 3.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successesToReset = n
		}
	}
}

// WithProbeInterval spaces out recovery probes while open. Zero probes on
// every call.
func WithProbeInterval(d time.Duration) Option {
	return func(b *Breaker) { b.probeEvery = d }
}

func New(name string, opts ...Option) *Breaker {
	b := &Breaker{name: name, failuresToTrip: 5, successesToReset: 3}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Breaker) Name() string { return b.name }

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) IsOpen() bool { return b.State() == Open }

// ProbeDue reports whether an open breaker should try the primary at now,
// and reserves that probe slot when it should.
func (b *Breaker) ProbeDue(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Open {
		return false
	}
	if b.probeEvery > 0 && now.Sub(b.lastProbe) < b.probeEvery {
		return false
	}
	b.lastProbe = now
	return true
}

// RecordFailure returns true when callers should take the fallback path.
func (b *Breaker) RecordFailure() (useFallback bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.successes = 0
	b.failures++
	switch {
	case b.state == Open:
		return true, StateChange{}
	case b.failures >= b.failuresToTrip:
		b.state = Open
		return true, StateChange{Opened: true}
	default:
		return false, StateChange{}
	}
}

// RecordSuccess returns true when callers may use the primary path again.
func (b *Breaker) RecordSuccess() (usePrimary bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == Closed {
		b.failures = 0
		return true, StateChange{}
	}
	if b.successes++; b.successes < b.successesToReset {
		return false, StateChange{}
	}
	b.state, b.failures, b.successes = Closed, 0, 0
	return true, StateChange{Closed: true}
}
