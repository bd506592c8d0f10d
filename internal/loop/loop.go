// Package loop runs tasks one at a time on a single goroutine so every
// state change and the cascade it triggers completes before the next task
// starts.
package loop

import (
	"context"
	"sync"
)

const defaultQueueSize = 64

// Loop is a serial task queue.
type Loop struct {
	tasks  chan func()
	mu     sync.RWMutex
	closed bool
}

// New creates a loop. It does nothing until Run is called.
func New() *Loop {
	return &Loop{tasks: make(chan func(), defaultQueueSize)}
}

// Post queues fn. It returns false once the loop has stopped. Post blocks
// when the queue is full.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return false
	}
	l.tasks <- fn
	return true
}

// Dispatch is Post without the result, for use as a dispatcher func.
func (l *Loop) Dispatch(fn func()) {
	l.Post(fn)
}

// Run executes queued tasks until ctx is done. Tasks still queued when ctx
// ends are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

func (l *Loop) close() {
	// Drain so posters blocked on a full queue can observe closed.
	go func() {
		for range l.tasks {
		}
	}()

	l.mu.Lock()
	l.closed = true
	close(l.tasks)
	l.mu.Unlock()
}
