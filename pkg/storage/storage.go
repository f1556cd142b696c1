package storage

import (
	"context"
	"fmt"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var log = logger.NewLogAgent("storage")

var ErrNotFound = errors.New("blob not found")

// Key addresses one output field of one task.
type Key struct {
	TaskID uuid.UUID
	Field  string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.TaskID, k.Field)
}

type BlobStoreInterface interface {
	// Put stores fd under key, replacing any previous value.
	Put(ctx context.Context, key Key, fd codec.FieldData) error

	// Get returns ErrNotFound if nothing is stored under key.
	Get(ctx context.Context, key Key) (codec.FieldData, error)

	// Delete removes every field stored for the task.
	Delete(ctx context.Context, taskID uuid.UUID) error

	Close()
}

// NewBlobStore returns a PgStore when a postgres DSN is configured and a
// MemoryStore otherwise.
func NewBlobStore(cfg *config.Config) (BlobStoreInterface, error) {
	if cfg.Storage.Pg.DSN == nil || *cfg.Storage.Pg.DSN == "" {
		log.Info("no postgres dsn configured, task outputs are kept in memory")
		return NewMemoryStore(), nil
	}
	return NewPgStore(cfg)
}
