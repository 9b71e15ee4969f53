package worker

import (
	"sync"
	"time"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool with optional periodic scheduling.
type Pool interface {
	Submit(Task)
	Schedule(interval time.Duration, t Task) (stop func())
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs     chan Task
	wg       sync.WaitGroup
	tickerWg sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Schedule 依 interval 週期性將 t 送進 pool，回傳的 stop 結束排程。
// 所有 stop 必須在 Stop 之前呼叫完畢。
func (p *pool) Schedule(interval time.Duration, t Task) (stop func()) {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	p.tickerWg.Add(1)
	go func() {
		defer p.tickerWg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p.Submit(t)
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (p *pool) Stop() {
	p.tickerWg.Wait()
	close(p.jobs)
	p.wg.Wait()
}
