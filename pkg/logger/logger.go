package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Rotation struct {
	// (Optional) Maximum size in megabytes of a log file before it gets rotated, default is 100
	MaxSizeMB int `yaml:"maxsizemb,omitempty"`

	// (Optional) Maximum number of old log files to retain, default is 3
	MaxBackups int `yaml:"maxbackups,omitempty"`

	// (Optional) Maximum number of days to retain old log files, default is 7
	MaxAgeDays int `yaml:"maxagedays,omitempty"`

	// (Optional) Whether to gzip rotated files
	Compress bool `yaml:"compress,omitempty"`
}

type Config struct {
	// (Optional) debug, info, warn or error, default is info
	Level string `yaml:"level,omitempty"`

	// (Optional) console or json, default is json
	Format string `yaml:"format,omitempty"`

	// (Optional) Path of a log file. Logs always go to stdout, the file is an additional sink.
	File string `yaml:"file,omitempty"`

	Rotation Rotation `yaml:"rotation,omitempty"`
}

// Init builds the root logger and installs it as the zap global. Log agents
// created before Init pick it up on their next call.
func Init(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Format) == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    valueOr(cfg.Rotation.MaxSizeMB, 100),
			MaxBackups: valueOr(cfg.Rotation.MaxBackups, 3),
			MaxAge:     valueOr(cfg.Rotation.MaxAgeDays, 7),
			Compress:   cfg.Rotation.Compress,
		}), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	zap.ReplaceGlobals(l)
	return l, nil
}

func valueOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// LogAgent is a named logger for one component, e.g. NewLogAgent("worker").
type LogAgent struct {
	name string
}

func NewLogAgent(name string) *LogAgent {
	return &LogAgent{name: name}
}

func (l *LogAgent) logger() *zap.Logger {
	return zap.L().Named(l.name).WithOptions(zap.AddCallerSkip(1))
}

func (l *LogAgent) Debug(msg string, fields ...zap.Field) {
	l.logger().Debug(msg, fields...)
}

func (l *LogAgent) Info(msg string, fields ...zap.Field) {
	l.logger().Info(msg, fields...)
}

func (l *LogAgent) Warn(msg string, fields ...zap.Field) {
	l.logger().Warn(msg, fields...)
}

func (l *LogAgent) Error(msg string, fields ...zap.Field) {
	l.logger().Error(msg, fields...)
}

func (l *LogAgent) Debugf(format string, args ...any) {
	l.logger().Sugar().Debugf(format, args...)
}

func (l *LogAgent) Infof(format string, args ...any) {
	l.logger().Sugar().Infof(format, args...)
}

func (l *LogAgent) Warnf(format string, args ...any) {
	l.logger().Sugar().Warnf(format, args...)
}

func (l *LogAgent) Errorf(format string, args ...any) {
	l.logger().Sugar().Errorf(format, args...)
}
