package savethedate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Succeeds(t *testing.T) {
	task := Start(context.Background(), func(ctx context.Context) (int, error) { return 42, nil })

	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, TaskSucceeded, task.Status())
}

func TestTask_Fails(t *testing.T) {
	boom := errors.New("boom")
	task := Start(context.Background(), func(ctx context.Context) (string, error) { return "", boom })

	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, TaskFailed, task.Status())
}

func TestTask_CancelFinishesImmediately(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	task := Start(context.Background(), func(ctx context.Context) (int, error) {
		<-release // ignores ctx on purpose
		return 1, nil
	})
	assert.Equal(t, TaskPending, task.Status())

	task.Cancel()
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish after cancel")
	}

	v, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, v)
	assert.Equal(t, TaskCancelled, task.Status())
}

func TestTask_LateResultIsDropped(t *testing.T) {
	gate := make(chan struct{})
	finished := make(chan struct{})
	task := Start(context.Background(), func(ctx context.Context) (int, error) {
		defer close(finished)
		<-ctx.Done()
		<-gate
		return 7, nil
	})
	task.Cancel()
	<-task.Done()
	close(gate)
	<-finished

	v, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, v)
}

func TestTask_DeadlineCountsAsFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	task := Start(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, TaskFailed, task.Status())
}

func TestTask_WaitRespectsCallerContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	task := Start(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})
	defer task.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, TaskPending, task.Status())
}

func TestTask_RendersCard(t *testing.T) {
	task := Start(context.Background(), func(ctx context.Context) (*Rendered, error) {
		return Render(ctx, sampleCard(), 1)
	})
	out, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CardWidth, out.Width)
}
