package app

import (
	"context"

	"github.com/cloudcarver/text2image/pkg/announcer"
	"github.com/cloudcarver/text2image/pkg/app/closer"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/descriptor"
	"github.com/cloudcarver/text2image/pkg/globalctx"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/server"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("app")

type httpServer interface {
	Listen() error
	Shutdown(ctx context.Context) error
}

type metricsServer interface {
	Start()
	Shutdown(ctx context.Context) error
}

type scheduler interface {
	Start()
	Stop(ctx context.Context) error
}

// Application owns the service descriptor and the lifetime of every
// long-running component.
type Application struct {
	globalCtx     *globalctx.GlobalContext
	descriptor    *descriptor.Descriptor
	server        httpServer
	prometheus    metricsServer
	janitor       scheduler
	announcer     announcer.AnnouncerInterface
	closerManager *closer.CloserManager

	announced chan struct{}
}

func NewApplication(
	zl *zap.Logger,
	globalCtx *globalctx.GlobalContext,
	d *descriptor.Descriptor,
	server *server.Server,
	prometheus *metrics.MetricsServer,
	janitor *taskcore.Janitor,
	announcer announcer.AnnouncerInterface,
	blobs storage.BlobStoreInterface,
	closerManager *closer.CloserManager,
) *Application {
	return newApplication(zl, globalCtx, d, server, prometheus, janitor, announcer, blobs, closerManager)
}

func newApplication(
	zl *zap.Logger,
	globalCtx *globalctx.GlobalContext,
	d *descriptor.Descriptor,
	server httpServer,
	prometheus metricsServer,
	janitor scheduler,
	announcer announcer.AnnouncerInterface,
	blobs storage.BlobStoreInterface,
	closerManager *closer.CloserManager,
) *Application {
	a := &Application{
		globalCtx:     globalCtx,
		descriptor:    d,
		server:        server,
		prometheus:    prometheus,
		janitor:       janitor,
		announcer:     announcer,
		closerManager: closerManager,
		announced:     make(chan struct{}),
	}

	// closers run in reverse: engines are told first, logs are flushed last
	closerManager.Register(
		func(ctx context.Context) error {
			_ = zl.Sync()
			return nil
		},
		func(ctx context.Context) error {
			blobs.Close()
			return nil
		},
		janitor.Stop,
		prometheus.Shutdown,
		server.Shutdown,
		func(ctx context.Context) error {
			a.announcer.GracefulShutdown(ctx, a.descriptor)
			return nil
		},
	)
	return a
}

// Start serves requests until the global context is cancelled. Engines are
// contacted in the background so the service is reachable before they answer.
func (a *Application) Start() error {
	go a.prometheus.Start()
	a.janitor.Start()
	go a.announce()
	return a.server.Listen()
}

func (a *Application) announce() {
	defer close(a.announced)
	attempts := a.announcer.AnnounceAll(a.globalCtx.Context(), a.descriptor)
	succeeded := 0
	for _, attempt := range attempts {
		if attempt.Succeeded {
			succeeded++
		}
	}
	log.Info("service announcement finished", zap.Int("engines", len(attempts)), zap.Int("succeeded", succeeded))
}

// Close cancels in-flight work and unregisters the service from every engine.
func (a *Application) Close() {
	a.globalCtx.Cancel()
	a.closerManager.Close()
}

// InitLogger configures the process-wide logger from cfg.Log.
func InitLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.Init(cfg.Log)
}

func (a *Application) GetDescriptor() *descriptor.Descriptor {
	return a.descriptor
}
