package taskcore

import (
	"context"
	"time"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("taskcore")

// Janitor periodically drops finished tasks and their stored outputs.
type Janitor struct {
	store TaskStoreInterface
	blobs storage.BlobStoreInterface
	ttl   time.Duration
	now   func() time.Time
	cron  *cron.Cron
}

func NewJanitor(cfg *config.Config, store TaskStoreInterface, blobs storage.BlobStoreInterface) (*Janitor, error) {
	j := &Janitor{
		store: store,
		blobs: blobs,
		ttl:   utils.UnwrapOr(cfg.Retention.TTL, config.DefaultRetentionTTL),
		now:   time.Now,
		cron:  cron.New(cron.WithSeconds()),
	}
	expr := utils.IfElse(cfg.Retention.Cron == "", config.DefaultRetentionCron, cfg.Retention.Cron)
	if _, err := j.cron.AddFunc(expr, func() {
		if _, err := j.Sweep(context.Background()); err != nil {
			log.Error("failed to sweep finished tasks", zap.Error(err))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to parse retention cron expression, format should be like second minute hour dayOfMonth month dayOfWeek: %s", expr)
	}
	return j, nil
}

func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to be done.
func (j *Janitor) Stop(ctx context.Context) error {
	select {
	case <-j.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep removes tasks that finished more than ttl ago and returns how many
// were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	purged, err := j.store.PurgeFinishedBefore(ctx, j.now().Add(-j.ttl))
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge tasks")
	}
	for _, id := range purged {
		if err := j.blobs.Delete(ctx, id); err != nil {
			return 0, errors.Wrapf(err, "failed to delete outputs of task %s", id)
		}
	}
	if len(purged) > 0 {
		log.Info("purged finished tasks", zap.Int("count", len(purged)))
	}
	return len(purged), nil
}
