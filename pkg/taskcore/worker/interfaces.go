package worker

import (
	"context"

	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/pkg/errors"
)

var ErrIntakeDisabled = errors.New("task intake is disabled")

type ExecutorInterface interface {
	// Execute runs one task to a terminal state. It never panics or returns an
	// error; failures are recorded on the returned task.
	Execute(ctx context.Context, task taskcore.Task) taskcore.Task
}

type TaskLifeCycleHandlerInterface interface {
	HandleReceived(ctx context.Context, task *taskcore.Task) error
	HandleProcessing(ctx context.Context, task *taskcore.Task) error
	HandleFailed(ctx context.Context, task *taskcore.Task) error
	HandleCompleted(ctx context.Context, task *taskcore.Task) error
}

type WorkerInterface interface {
	// Submit registers the task and runs it in the background.
	Submit(ctx context.Context, task taskcore.Task) error

	// Wait blocks until every submitted task has finished.
	Wait()
}
