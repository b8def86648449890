// Package detach runs fire-and-forget side effects. Tasks get their own
// context, are never awaited by the request that spawned them and only log
// their failures.
package detach

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/metrics"
)

const DefaultTimeout = 5 * time.Second

type Task func(ctx context.Context) error

type Detacher struct {
	wg      sync.WaitGroup
	timeout time.Duration
	metrics *metrics.Metrics
}

type Option func(*Detacher)

func WithTimeout(d time.Duration) Option {
	return func(dt *Detacher) {
		if d > 0 {
			dt.timeout = d
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(dt *Detacher) {
		dt.metrics = m
	}
}

func New(opts ...Option) *Detacher {
	d := &Detacher{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Go starts the task in its own goroutine and returns immediately.
func (d *Detacher) Go(name string, task Task) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(name, task)
	}()
}

func (d *Detacher) run(name string, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return task(ctx)
	}()

	status := "ok"
	if err != nil {
		status = "failed"
		slog.Warn("Detached task failed", "task", name, "error", err)
	}
	if d.metrics != nil {
		d.metrics.DetachedTasks.WithLabelValues(name, status).Inc()
	}
}

// Wait blocks until every started task finished or ctx is done.
func (d *Detacher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
