package worker

import (
	"context"
	"sync"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/globalctx"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var log = logger.NewLogAgent("worker")

type Worker struct {
	executor ExecutorInterface

	lifeCycleHandler TaskLifeCycleHandlerInterface

	globalCtx *globalctx.GlobalContext

	// nil when concurrency is unbounded
	sem *semaphore.Weighted

	disabled bool

	wg sync.WaitGroup
}

func NewWorker(globalCtx *globalctx.GlobalContext, cfg *config.Config, executor ExecutorInterface, lifeCycleHandler TaskLifeCycleHandlerInterface) WorkerInterface {
	w := &Worker{
		executor:         executor,
		lifeCycleHandler: lifeCycleHandler,
		globalCtx:        globalCtx,
		disabled:         cfg.Worker.Disable,
	}
	if cfg.Worker.MaxConcurrency > 0 {
		w.sem = semaphore.NewWeighted(cfg.Worker.MaxConcurrency)
	}
	return w
}

func (w *Worker) Submit(ctx context.Context, task taskcore.Task) error {
	if w.disabled {
		return ErrIntakeDisabled
	}
	if err := w.lifeCycleHandler.HandleReceived(ctx, &task); err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		metrics.WorkerGoroutines.Inc()
		defer metrics.WorkerGoroutines.Dec()
		w.run(w.globalCtx.Context(), task)
	}()
	return nil
}

func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context, task taskcore.Task) {
	taskID := zap.String("task_id", task.ID.String())

	if w.sem != nil {
		if err := w.sem.Acquire(ctx, 1); err != nil {
			task.Fail(taskcore.ProcessingError, "worker is shutting down: "+err.Error(), "")
			w.handleFailed(ctx, &task)
			return
		}
		defer w.sem.Release(1)
	}

	log.Info("executing task", taskID)

	if err := w.lifeCycleHandler.HandleProcessing(ctx, &task); err != nil {
		log.Error("error handling processing task", taskID, zap.Error(err))
	}

	task = w.executor.Execute(ctx, task)

	if task.State == taskcore.Completed {
		if err := w.lifeCycleHandler.HandleCompleted(ctx, &task); err != nil {
			log.Error("error handling completed task", taskID, zap.Error(err))
			task.Fail(taskcore.ProcessingError, err.Error(), "")
			w.handleFailed(ctx, &task)
			return
		}
		log.Info("task completed", taskID)
		return
	}
	w.handleFailed(ctx, &task)
}

func (w *Worker) handleFailed(ctx context.Context, task *taskcore.Task) {
	log.Warn("task failed",
		zap.String("task_id", task.ID.String()),
		zap.String("kind", string(task.Error.Kind)),
		zap.String("error", task.Error.Message),
	)
	if err := w.lifeCycleHandler.HandleFailed(ctx, task); err != nil {
		log.Error("error handling failed task", zap.String("task_id", task.ID.String()), zap.Error(err))
	}
}
