package parallel

import (
	"errors"
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func() error)
	WaitFunc   func() error
)

// Pool runs jobs on a fixed number of workers and keeps the errors they
// return. With a single worker, jobs run inline in Do.
type Pool struct {
	Do   WorkerFunc
	Wait WaitFunc

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	pool.Do = func(f func() error) {
		pool.record(f())
	}
	pool.Wait = pool.result

	if numWorkers > 1 {
		workChan := make(chan func() error, numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					pool.record(f())
				}
			})
		}

		pool.Do = func(f func() error) {
			workChan <- f
		}

		closeWork := sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func() error {
			closeWork()
			pool.wg.Wait()
			return pool.result()
		}
	}

	return pool
}

func (p *Pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *Pool) result() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
