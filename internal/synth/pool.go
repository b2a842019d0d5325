package synth

import (
	"context"
	"sync"
)

// job is a unit of work run by the pool.
type job func(ctx context.Context) error

// pool runs jobs on a fixed number of goroutines and remembers the first
// error. The first failure cancels the context seen by later jobs.
type pool struct {
	jobs    chan job
	wg      sync.WaitGroup
	workers int

	cancel  context.CancelFunc
	errOnce sync.Once
	err     error
}

func newPool(workers int) *pool {
	if workers <= 0 {
		workers = 1
	}
	return &pool{
		jobs:    make(chan job, workers*2),
		workers: workers,
	}
}

// start launches the workers. The returned context is cancelled on the first
// job error or when the parent is done.
func (p *pool) start(ctx context.Context) context.Context {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				if ctx.Err() != nil {
					continue
				}
				if err := j(ctx); err != nil {
					p.fail(err)
				}
			}
		}()
	}
	return ctx
}

func (p *pool) fail(err error) {
	p.errOnce.Do(func() {
		p.err = err
		p.cancel()
	})
}

// submit queues j. It returns false once the pool context is done.
func (p *pool) submit(ctx context.Context, j job) bool {
	select {
	case <-ctx.Done():
		return false
	case p.jobs <- j:
		return true
	}
}

// wait closes the queue, waits for the workers and returns the first error.
func (p *pool) wait() error {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
	return p.err
}
