package worker

import (
	"context"
	"testing"
	"time"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/hooks"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandleCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)

	var (
		ctx     = context.Background()
		now     = time.Date(2025, 3, 27, 0, 0, 1, 0, time.UTC)
		taskID  = uuid.New()
		outputs = map[string]codec.FieldData{"result": {Data: pngBytes, Type: codec.ImagePNG}}
		hooked  []taskcore.Snapshot
	)

	mockStore := taskcore.NewMockTaskStoreInterface(ctrl)
	mockBlobs := storage.NewMockBlobStoreInterface(ctrl)
	baseHook := hooks.NewBaseHook()
	baseHook.RegisterOnTaskFinishedHook(func(_ context.Context, task taskcore.Snapshot) error {
		hooked = append(hooked, task)
		return errors.New("callback down")
	})

	handler := &TaskLifeCycleHandler{
		store: mockStore,
		blobs: mockBlobs,
		hooks: baseHook,
		now:   func() time.Time { return now },
	}

	task := taskcore.Task{ID: taskID, State: taskcore.Processing}
	task.Complete(outputs)

	expected := taskcore.Snapshot{
		ID:        taskID,
		State:     taskcore.Completed,
		Outputs:   map[string]codec.ContentType{"result": codec.ImagePNG},
		UpdatedAt: now,
	}

	gomock.InOrder(
		mockBlobs.EXPECT().Put(ctx, storage.Key{TaskID: taskID, Field: "result"}, outputs["result"]).Return(nil),
		mockStore.EXPECT().Update(ctx, expected).Return(nil),
	)

	// a failing hook does not fail the task
	require.NoError(t, handler.HandleCompleted(ctx, &task))
	require.Equal(t, []taskcore.Snapshot{expected}, hooked)
}

func TestHandleCompletedStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)

	ctx := context.Background()
	mockStore := taskcore.NewMockTaskStoreInterface(ctrl)
	mockBlobs := storage.NewMockBlobStoreInterface(ctrl)

	handler := &TaskLifeCycleHandler{
		store: mockStore,
		blobs: mockBlobs,
		hooks: hooks.NewBaseHook(),
		now:   time.Now,
	}

	task := taskcore.Task{ID: uuid.New()}
	task.Complete(map[string]codec.FieldData{"result": {Data: pngBytes, Type: codec.ImagePNG}})

	mockBlobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	require.Error(t, handler.HandleCompleted(ctx, &task))
}

func TestHandleFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	var (
		ctx    = context.Background()
		now    = time.Date(2025, 3, 27, 0, 0, 1, 0, time.UTC)
		taskID = uuid.New()
		hooked int
	)

	mockStore := taskcore.NewMockTaskStoreInterface(ctrl)
	baseHook := hooks.NewBaseHook()
	baseHook.RegisterOnTaskFinishedHook(func(_ context.Context, _ taskcore.Snapshot) error {
		hooked++
		return nil
	})

	handler := &TaskLifeCycleHandler{
		store: mockStore,
		hooks: baseHook,
		now:   func() time.Time { return now },
	}

	task := taskcore.Task{ID: taskID}
	task.Fail(taskcore.InvalidInput, "input field input_text: missing field", "")

	mockStore.EXPECT().Update(ctx, taskcore.Snapshot{
		ID:    taskID,
		State: taskcore.Failed,
		Error: &taskcore.TaskError{
			Kind:    taskcore.InvalidInput,
			Message: "input field input_text: missing field",
		},
		UpdatedAt: now,
	}).Return(nil)

	require.NoError(t, handler.HandleFailed(ctx, &task))
	require.Equal(t, 1, hooked)
}

func TestHandleFailedWithoutError(t *testing.T) {
	handler := &TaskLifeCycleHandler{now: time.Now}
	require.Error(t, handler.HandleFailed(context.Background(), &taskcore.Task{ID: uuid.New(), State: taskcore.Failed}))
}

func TestHandleReceived(t *testing.T) {
	ctrl := gomock.NewController(t)

	var (
		ctx    = context.Background()
		now    = time.Date(2025, 3, 27, 0, 0, 1, 0, time.UTC)
		taskID = uuid.New()
	)

	mockStore := taskcore.NewMockTaskStoreInterface(ctrl)
	handler := &TaskLifeCycleHandler{
		store: mockStore,
		now:   func() time.Time { return now },
	}

	mockStore.EXPECT().Create(ctx, taskcore.Snapshot{
		ID:        taskID,
		State:     taskcore.Received,
		CreatedAt: now,
		UpdatedAt: now,
	}).Return(taskcore.ErrTaskExists)

	err := handler.HandleReceived(ctx, &taskcore.Task{ID: taskID})
	require.ErrorIs(t, err, taskcore.ErrTaskExists)
}
