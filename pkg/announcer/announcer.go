package announcer

import (
	"context"
	"time"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/descriptor"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var log = logger.NewLogAgent("announcer")

type AnnouncerInterface interface {
	// Announce makes one registration attempt and reports whether the engine
	// acknowledged it.
	Announce(ctx context.Context, d *descriptor.Descriptor, engineURL string) bool

	// AnnounceAll registers d with every configured engine, one engine after
	// the other, retrying each with a fixed delay.
	AnnounceAll(ctx context.Context, d *descriptor.Descriptor) []Attempt

	// GracefulShutdown unregisters d from every configured engine, once each.
	// The calls run concurrently and each one gets its own timeout, so a hung
	// engine or an expired ctx does not keep the others from being called.
	GracefulShutdown(ctx context.Context, d *descriptor.Descriptor)
}

// Attempt is the outcome of the announcement loop for one engine.
type Attempt struct {
	EngineURL string
	Attempts  int
	Remaining int
	Succeeded bool
}

type Announcer struct {
	engineURLs []string
	retries    int
	retryDelay time.Duration
	timeout    time.Duration
	shutdown   time.Duration
	client     EngineClientInterface

	sleep func(ctx context.Context, d time.Duration) error
}

func NewAnnouncer(cfg *config.Config, client EngineClientInterface) AnnouncerInterface {
	return &Announcer{
		engineURLs: cfg.Engine.URLs,
		retries:    max(utils.UnwrapOr(cfg.Engine.AnnounceRetries, config.DefaultAnnounceRetries), 0),
		retryDelay: utils.UnwrapOr(cfg.Engine.AnnounceRetryDelay, config.DefaultAnnounceRetryDelay),
		timeout:    utils.UnwrapOr(cfg.Engine.Timeout, config.DefaultEngineTimeout),
		shutdown:   utils.UnwrapOr(cfg.Engine.ShutdownTimeout, config.DefaultEngineShutdown),
		client:     client,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (a *Announcer) Announce(ctx context.Context, d *descriptor.Descriptor, engineURL string) bool {
	if d == nil {
		panic("announcer: nil descriptor")
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.client.Register(ctx, engineURL, d.Model()); err != nil {
		metrics.AnnounceAttempts.WithLabelValues("failure").Inc()
		log.Info("failed to announce service", zap.String("engine", engineURL), zap.Error(err))
		return false
	}
	metrics.AnnounceAttempts.WithLabelValues("success").Inc()
	log.Info("service announced", zap.String("engine", engineURL), zap.String("slug", d.Slug()))
	return true
}

func (a *Announcer) AnnounceAll(ctx context.Context, d *descriptor.Descriptor) []Attempt {
	if a.retries == 0 {
		log.Info("service announcement disabled", zap.Int("engines", len(a.engineURLs)))
		return nil
	}
	ret := make([]Attempt, 0, len(a.engineURLs))
	for _, engineURL := range a.engineURLs {
		attempt := a.announceWithRetry(ctx, d, engineURL)
		ret = append(ret, attempt)
		if ctx.Err() != nil {
			log.Info("announcement interrupted", zap.String("engine", engineURL), zap.Error(ctx.Err()))
			return ret
		}
		if !attempt.Succeeded {
			log.Warn("aborting service announcement",
				zap.String("engine", engineURL),
				zap.Int("attempts", attempt.Attempts),
			)
		}
	}
	return ret
}

func (a *Announcer) announceWithRetry(ctx context.Context, d *descriptor.Descriptor, engineURL string) Attempt {
	attempt := Attempt{EngineURL: engineURL, Remaining: a.retries}
	for attempt.Remaining > 0 {
		if attempt.Attempts > 0 {
			if err := a.sleep(ctx, a.retryDelay); err != nil {
				return attempt
			}
		}
		attempt.Attempts++
		attempt.Remaining--
		if attempt.Succeeded = a.Announce(ctx, d, engineURL); attempt.Succeeded {
			return attempt
		}
	}
	return attempt
}

func (a *Announcer) GracefulShutdown(ctx context.Context, d *descriptor.Descriptor) {
	// detached from ctx, it may already be past its deadline
	base := context.WithoutCancel(ctx)

	var g errgroup.Group
	for _, engineURL := range a.engineURLs {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(base, a.shutdown)
			defer cancel()
			if err := a.client.Unregister(ctx, engineURL, d.Slug()); err != nil {
				log.Warn("failed to unregister service", zap.String("engine", engineURL), zap.Error(err))
				return nil
			}
			log.Info("service unregistered", zap.String("engine", engineURL))
			return nil
		})
	}
	_ = g.Wait()
}
