package config

import (
	"os"
	"time"

	"github.com/cloudcarver/edc/conf"
	"github.com/cloudcarver/text2image/pkg/logger"
)

const (
	envPrefix  = "T2I_"
	configFile = "text2image.yaml"
)

type Engine struct {
	// (Optional) Base URLs of the engines this service announces itself to. If empty, the service runs standalone.
	URLs []string `yaml:"urls,omitempty"`

	// (Optional) Number of announcement attempts per engine, default is 5. 0 disables announcement.
	AnnounceRetries *int `yaml:"announceretries,omitempty"`

	// (Optional) Delay between two announcement attempts to the same engine, default is 3s
	AnnounceRetryDelay *time.Duration `yaml:"announceretrydelay,omitempty"`

	// (Optional) Timeout of a single request to an engine, default is 10s
	Timeout *time.Duration `yaml:"timeout,omitempty"`

	// (Optional) Timeout of the deregistration call made to each engine on shutdown, default is 3s
	ShutdownTimeout *time.Duration `yaml:"shutdowntimeout,omitempty"`
}

type Worker struct {
	// (Optional) Whether to disable task intake, default is false
	Disable bool `yaml:"disable,omitempty"`

	// (Optional) Maximum number of tasks processed at the same time, 0 means unbounded
	MaxConcurrency int64 `yaml:"maxconcurrency,omitempty"`
}

type Inference struct {
	// (Optional) Timeout of a call to the inference API, default is 5m. Models may need time to warm up.
	Timeout *time.Duration `yaml:"timeout,omitempty"`
}

type Pg struct {
	// (Optional) The DSN (Data Source Name) for postgres database connection. If not set, task outputs are kept in memory.
	DSN *string `yaml:"dsn,omitempty"`
}

type Storage struct {
	Pg Pg `yaml:"pg,omitempty"`
}

type Retention struct {
	// (Optional) How long finished tasks and their outputs are kept, default is 1h
	TTL *time.Duration `yaml:"ttl,omitempty"`

	// (Optional) Cron expression (with seconds) of the cleanup job, default is every 10 minutes
	Cron string `yaml:"cron,omitempty"`
}

type Config struct {
	// (Optional) The host the HTTP server binds to, default is 0.0.0.0
	Host string `yaml:"host,omitempty"`

	// (Optional) The port of the HTTP server, default is 9090
	Port int `yaml:"port,omitempty"`

	// (Optional) The base URL advertised to the engines, default is http://localhost:<port>
	URL string `yaml:"url,omitempty"`

	Engine Engine `yaml:"engine,omitempty"`

	Log logger.Config `yaml:"log,omitempty"`

	// (Optional) The port of the metrics server, default is 9020
	MetricsPort int `yaml:"metricsport,omitempty"`

	Worker Worker `yaml:"worker,omitempty"`

	Inference Inference `yaml:"inference,omitempty"`

	Storage Storage `yaml:"storage,omitempty"`

	Retention Retention `yaml:"retention,omitempty"`

	// (Optional) The timeout for an HTTP request served by this service, default is no timeout
	RequestTimeout *time.Duration `yaml:"requesttimeout,omitempty"`
}

func NewConfig() (*Config, error) {
	c := &Config{}
	if err := conf.FetchConfig((func() string {
		if _, err := os.Stat(configFile); err != nil {
			return ""
		}
		return configFile
	})(), envPrefix, c); err != nil {
		return nil, err
	}
	return c, nil
}
