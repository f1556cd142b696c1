package worker

import (
	"context"
	"time"

	"github.com/cloudcarver/text2image/pkg/hooks"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type TaskLifeCycleHandler struct {
	store taskcore.TaskStoreInterface
	blobs storage.BlobStoreInterface
	hooks hooks.TaskHookInterface
	now   func() time.Time
}

func NewTaskLifeCycleHandler(store taskcore.TaskStoreInterface, blobs storage.BlobStoreInterface, hooks hooks.TaskHookInterface) TaskLifeCycleHandlerInterface {
	return &TaskLifeCycleHandler{
		store: store,
		blobs: blobs,
		hooks: hooks,
		now:   time.Now,
	}
}

func (a *TaskLifeCycleHandler) HandleReceived(ctx context.Context, task *taskcore.Task) error {
	task.State = taskcore.Received
	task.CreatedAt = a.now()
	task.UpdatedAt = task.CreatedAt
	if err := a.store.Create(ctx, task.Snapshot()); err != nil {
		return err
	}
	metrics.ReceivedTasks.Inc()
	return nil
}

func (a *TaskLifeCycleHandler) HandleProcessing(ctx context.Context, task *taskcore.Task) error {
	task.State = taskcore.Processing
	task.UpdatedAt = a.now()
	if err := a.store.Update(ctx, task.Snapshot()); err != nil {
		return errors.Wrap(err, "update task state")
	}
	return nil
}

func (a *TaskLifeCycleHandler) HandleCompleted(ctx context.Context, task *taskcore.Task) error {
	for name, fd := range task.Outputs {
		if err := a.blobs.Put(ctx, storage.Key{TaskID: task.ID, Field: name}, fd); err != nil {
			return errors.Wrap(err, "store task output")
		}
	}
	task.UpdatedAt = a.now()
	if err := a.store.Update(ctx, task.Snapshot()); err != nil {
		return errors.Wrap(err, "update task state")
	}
	metrics.CompletedTasks.Inc()
	a.finished(ctx, task)
	return nil
}

func (a *TaskLifeCycleHandler) HandleFailed(ctx context.Context, task *taskcore.Task) error {
	if task.Error == nil {
		return errors.Errorf("task %s failed without an error record", task.ID)
	}
	task.UpdatedAt = a.now()
	if err := a.store.Update(ctx, task.Snapshot()); err != nil {
		return errors.Wrap(err, "update task state")
	}
	metrics.FailedTasks.WithLabelValues(string(task.Error.Kind)).Inc()
	a.finished(ctx, task)
	return nil
}

// finished runs the hooks. Their failures do not change the task outcome.
func (a *TaskLifeCycleHandler) finished(ctx context.Context, task *taskcore.Task) {
	if err := a.hooks.OnTaskFinished(ctx, task.Snapshot()); err != nil {
		log.Warn("task finished hook failed", zap.String("task_id", task.ID.String()), zap.Error(err))
	}
}
