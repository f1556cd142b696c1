package taskcore

import (
	"context"
	"testing"
	"time"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJanitorSweep(t *testing.T) {
	ctrl := gomock.NewController(t)

	var (
		ctx     = context.Background()
		now     = time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
		taskIDs = []uuid.UUID{uuid.New(), uuid.New()}
	)

	mockStore := NewMockTaskStoreInterface(ctrl)
	mockBlobs := storage.NewMockBlobStoreInterface(ctrl)

	j, err := NewJanitor(&config.Config{
		Retention: config.Retention{TTL: utils.Ptr(30 * time.Minute)},
	}, mockStore, mockBlobs)
	require.NoError(t, err)
	j.now = func() time.Time { return now }

	mockStore.EXPECT().PurgeFinishedBefore(ctx, now.Add(-30*time.Minute)).Return(taskIDs, nil)
	mockBlobs.EXPECT().Delete(ctx, taskIDs[0]).Return(nil)
	mockBlobs.EXPECT().Delete(ctx, taskIDs[1]).Return(nil)

	n, err := j.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestJanitorSweepBlobError(t *testing.T) {
	ctrl := gomock.NewController(t)

	ctx := context.Background()
	taskID := uuid.New()

	mockStore := NewMockTaskStoreInterface(ctrl)
	mockBlobs := storage.NewMockBlobStoreInterface(ctrl)

	j, err := NewJanitor(&config.Config{}, mockStore, mockBlobs)
	require.NoError(t, err)

	mockStore.EXPECT().PurgeFinishedBefore(ctx, gomock.Any()).Return([]uuid.UUID{taskID}, nil)
	mockBlobs.EXPECT().Delete(ctx, taskID).Return(errors.New("connection reset"))

	_, err = j.Sweep(ctx)
	require.Error(t, err)
}

func TestJanitorInvalidCron(t *testing.T) {
	_, err := NewJanitor(&config.Config{
		Retention: config.Retention{Cron: "every minute"},
	}, NewTaskStore(), storage.NewMemoryStore())
	require.Error(t, err)
}

func TestJanitorStartStop(t *testing.T) {
	j, err := NewJanitor(&config.Config{}, NewTaskStore(), storage.NewMemoryStore())
	require.NoError(t, err)
	j.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, j.Stop(ctx))
}
