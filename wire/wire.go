//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/cloudcarver/text2image/pkg/announcer"
	"github.com/cloudcarver/text2image/pkg/app"
	"github.com/cloudcarver/text2image/pkg/app/closer"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/controller"
	"github.com/cloudcarver/text2image/pkg/globalctx"
	"github.com/cloudcarver/text2image/pkg/inference"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/processor"
	"github.com/cloudcarver/text2image/pkg/server"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/cloudcarver/text2image/pkg/taskcore/worker"
	"github.com/google/wire"
)

func InitializeApplication() (*app.Application, error) {
	wire.Build(
		config.NewConfig,
		config.DefaultLibConfig,
		app.InitLogger,
		globalctx.New,
		processor.NewDescriptor,
		inference.NewClient,
		processor.NewTextToImage,
		storage.NewBlobStore,
		taskcore.NewTaskStore,
		taskcore.NewJanitor,
		worker.NewReporter,
		worker.NewTaskHooks,
		worker.NewExecutor,
		worker.NewTaskLifeCycleHandler,
		worker.NewWorker,
		controller.NewController,
		server.NewServer,
		metrics.NewMetricsServer,
		announcer.NewEngineClient,
		announcer.NewAnnouncer,
		closer.NewCloserManager,
		app.NewApplication,
	)
	return nil, nil
}
