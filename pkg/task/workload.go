package task

import (
	"context"
	"fmt"
	"time"

	"github.com/pingcap-incubator/tiprogress/pkg/cliutil/progress"
	"github.com/pingcap/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Workload is a long running task made of the units From+1 to To. The
// progress value of the workload goes from From to To.
type Workload struct {
	Name    string
	From    int
	To      int
	Workers int
	// Step performs one unit of work, it may be called concurrently.
	Step func(ctx context.Context, unit int) error
}

// String implements the fmt.Stringer interface
func (w *Workload) String() string {
	return fmt.Sprintf("Workload: name=%s from=%d to=%d workers=%d", w.Name, w.From, w.To, w.Workers)
}

// Run executes the workload. The number of completed units is published on
// bus every interval by a single goroutine, and once more when every worker
// has returned.
func (w *Workload) Run(ctx context.Context, bus *EventBus, interval time.Duration) error {
	if w.To < w.From {
		return errors.Errorf("workload '%s' ends (%d) before it starts (%d)", w.Name, w.To, w.From)
	}
	if interval <= 0 {
		return errors.Errorf("invalid refresh interval %s", interval)
	}
	workers := w.Workers
	if workers < 1 {
		workers = 1
	}
	step := w.Step
	if step == nil {
		step = func(context.Context, int) error { return nil }
	}

	bus.PublishTaskBegin(w)
	bus.PublishTaskProgress(w, w.From)

	completed := atomic.NewInt64(0)
	units := make(chan int)
	errg, ectx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		defer close(units)
		for u := w.From + 1; u <= w.To; u++ {
			select {
			case units <- u:
			case <-ectx.Done():
				return ectx.Err()
			}
		}
		return nil
	})
	for i := 0; i < workers; i++ {
		errg.Go(func() error {
			for u := range units {
				if err := ectx.Err(); err != nil {
					return err
				}
				if err := step(ectx, u); err != nil {
					return errors.Annotatef(err, "unit %d", u)
				}
				completed.Inc()
			}
			return nil
		})
	}

	finished := make(chan struct{})
	reported := make(chan struct{})
	go func() {
		defer close(reported)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				bus.PublishTaskProgress(w, w.From+int(completed.Load()))
			case <-finished:
				return
			}
		}
	}()

	err := errg.Wait()
	close(finished)
	<-reported

	bus.PublishTaskProgress(w, w.From+int(completed.Load()))
	bus.PublishTaskFinish(w, err)
	return err
}

// Display draws every progress event of bus on bar until the returned
// function is called. It returns the first error of bar, later events are
// ignored once an update failed.
func Display(bus *EventBus, bar progress.Bar) (stop func() error) {
	var firstErr error
	handler := func(e ProgressEvent) {
		if firstErr != nil {
			return
		}
		firstErr = bar.Update(e.Current)
	}
	bus.Subscribe(EventTaskProgress, handler)

	return func() error {
		bus.Unsubscribe(EventTaskProgress, handler)
		return firstErr
	}
}
