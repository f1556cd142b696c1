package config

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	DefaultPort               = 9090
	DefaultMetricsPort        = 9020
	DefaultAnnounceRetries    = 5
	DefaultAnnounceRetryDelay = 3 * time.Second
	DefaultEngineTimeout      = 10 * time.Second
	DefaultEngineShutdown     = 3 * time.Second
	DefaultInferenceTimeout   = 5 * time.Minute
	DefaultRetentionTTL       = time.Hour
	DefaultRetentionCron      = "0 */10 * * * *"
)

type LogCfg struct {
	// Requests to this path are only logged when they fail
	HealthCheckPath *string
}

// LibConfig holds settings that are set in code rather than in the config file.
type LibConfig struct {
	Cors      *cors.Config
	BodyLimit int
	Log       LogCfg
}

func DefaultLibConfig() *LibConfig {
	healthPath := "/status"
	return &LibConfig{
		Cors: &cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,HEAD,OPTIONS",
		},
		BodyLimit: 50 * 1024 * 1024,
		Log: LogCfg{
			HealthCheckPath: &healthPath,
		},
	}
}
