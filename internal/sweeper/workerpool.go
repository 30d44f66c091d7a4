package sweeper

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

var ErrPoolClosed = errors.New("worker pool is closed")

// WorkerPool runs queued tasks on a fixed set of goroutines. A task error is
// logged, the auction it belongs to is picked up again on the next sweep.
type WorkerPool struct {
	pool chan Task
	done chan struct{}
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{
		pool: make(chan Task, size),
		done: make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("Task execution failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}
	select {
	case <-wp.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops the workers. Queued tasks that no worker picked up yet are
// dropped, safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
	})
}
