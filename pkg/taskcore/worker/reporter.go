package worker

import (
	"context"
	"net/http"

	"github.com/cloudcarver/text2image/lib/httpx"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/hooks"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reporter posts the final snapshot of a task to its callback URL.
type Reporter struct {
	delegate httpx.HTTPDelegate
}

func NewReporter(cfg *config.Config) *Reporter {
	return &Reporter{
		delegate: &http.Client{Timeout: utils.UnwrapOr(cfg.Engine.Timeout, config.DefaultEngineTimeout)},
	}
}

func (r *Reporter) Report(ctx context.Context, task taskcore.Snapshot) error {
	if task.CallbackURL == "" {
		return nil
	}
	res, err := httpx.NewHTTPClient("", r.delegate).
		Post(ctx, task.CallbackURL).
		WithJSON(task).
		Do()
	if err != nil {
		return errors.Wrap(err, "failed to report task result")
	}
	if err := res.ExpectSuccess(); err != nil {
		return errors.Wrapf(err, "callback rejected task result: %s", utils.TruncateString(res.Text(), 256))
	}
	res.Close()
	log.Info("task result reported", zap.String("task_id", task.ID.String()))
	return nil
}

// NewTaskHooks wires the reporter into the task finished hooks.
func NewTaskHooks(r *Reporter) hooks.TaskHookInterface {
	h := hooks.NewBaseHook()
	h.RegisterOnTaskFinishedHook(r.Report)
	return h
}
