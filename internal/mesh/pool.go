package mesh

import (
	"context"
	"sync"
)

// Job asks the pool to run a generator off the caller's goroutine. The
// finished buffer (or the generator's error) is delivered on ResultChan.
type Job struct {
	Name       string
	Generate   func() (*Buffer, error)
	ResultChan chan Result
}

// Result contains the result of one generation job.
type Result struct {
	Name   string
	Buffer *Buffer
	Err    error
}

// WorkerPool runs mesh generators on a fixed set of goroutines. Generators
// are pure, so any number of jobs may run in parallel.
type WorkerPool struct {
	jobQueue chan Job
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a pool with the given worker count and queue size.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// Submit queues a job without blocking.
// Returns true if the job was queued, false if the queue is full.
func (p *WorkerPool) Submit(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking queues a job, waiting for room if the queue is full.
func (p *WorkerPool) SubmitBlocking(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			buf, err := job.Generate()

			select {
			case job.ResultChan <- Result{Name: job.Name, Buffer: buf, Err: err}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}
