package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsTasksInOrder(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	results := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		require.True(t, l.Post(func() { results <- i }))
	}

	for want := 0; want < 3; want++ {
		select {
		case got := <-results:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("task did not run")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestLoop_TaskCanPost(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	nested := make(chan struct{})
	l.Dispatch(func() {
		l.Dispatch(func() { close(nested) })
	})

	select {
	case <-nested:
	case <-time.After(2 * time.Second):
		t.Fatal("nested task did not run")
	}
}

func TestLoop_PostAfterStop(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, l.Run(ctx))

	assert.False(t, l.Post(func() {}))
	assert.False(t, l.Post(nil))
}
