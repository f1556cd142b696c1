package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("metrics")

var (
	ReceivedTasks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "text2image_tasks_received_total",
		Help: "Number of tasks accepted for execution",
	})

	CompletedTasks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "text2image_tasks_completed_total",
		Help: "Number of tasks that reached COMPLETED",
	})

	FailedTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "text2image_tasks_failed_total",
		Help: "Number of tasks that reached FAILED, by error kind",
	}, []string{"kind"})

	WorkerGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "text2image_worker_goroutines",
		Help: "Number of tasks currently being executed",
	})

	InferenceLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "text2image_inference_latency_seconds",
		Help:    "Latency of calls to the inference API",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	AnnounceAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "text2image_announce_attempts_total",
		Help: "Number of announcement attempts to engines, by outcome",
	}, []string{"outcome"})
)

type MetricsServer struct {
	server *http.Server
}

func NewMetricsServer(cfg *config.Config) *MetricsServer {
	port := cfg.MetricsPort
	if port == 0 {
		port = config.DefaultMetricsPort
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &MetricsServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (m *MetricsServer) Start() {
	log.Info("starting metrics server", zap.String("addr", m.server.Addr))
	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("metrics server exited", zap.Error(err))
	}
}

func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}
