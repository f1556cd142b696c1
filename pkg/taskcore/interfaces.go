package taskcore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskExists   = errors.New("task already exists")
)

type TaskStoreInterface interface {
	// Create returns ErrTaskExists if a task with the same id is known.
	Create(ctx context.Context, task Snapshot) error

	Get(ctx context.Context, id uuid.UUID) (Snapshot, error)

	Update(ctx context.Context, task Snapshot) error

	// PurgeFinishedBefore drops terminal tasks last updated before t and
	// returns their ids.
	PurgeFinishedBefore(ctx context.Context, t time.Time) ([]uuid.UUID, error)

	// CountActive returns the number of tasks not yet in a terminal state.
	CountActive(ctx context.Context) int
}
