// Package testutil holds helpers shared by store and service tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/be1500616/zergoqrf/internal/sentinel"
)

// Outcomes counts how racing calls finished.
type Outcomes struct {
	OK        int
	Conflicts int
	NotFound  int
	Failed    int
	Errs      []error
}

func (o Outcomes) Total() int { return o.OK + o.Conflicts + o.NotFound + o.Failed }

func (o *Outcomes) record(err error) {
	switch {
	case err == nil:
		o.OK++
	case errors.Is(err, sentinel.ErrAlreadyExists):
		o.Conflicts++
	case errors.Is(err, sentinel.ErrNotFound):
		o.NotFound++
	default:
		o.Failed++
		o.Errs = append(o.Errs, err)
	}
}

// Race starts n calls of fn behind a shared gate so they contend as closely
// as the scheduler allows, then tallies the results. Unclassified errors are
// kept in Errs for assertion messages.
func Race(ctx context.Context, n int, fn func(ctx context.Context, idx int) error) Outcomes {
	var (
		gate = make(chan struct{})
		wg   sync.WaitGroup
		mu   sync.Mutex
		out  Outcomes
	)
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			<-gate
			err := fn(ctx, i)
			mu.Lock()
			out.record(err)
			mu.Unlock()
		}()
	}
	close(gate)
	wg.Wait()
	return out
}
