package hooks

import (
	"context"

	"github.com/cloudcarver/text2image/pkg/taskcore"
)

type OnTaskFinished func(ctx context.Context, task taskcore.Snapshot) error

type TaskHookInterface interface {
	OnTaskFinished(ctx context.Context, task taskcore.Snapshot) error
}

type BaseHook struct {
	OnTaskFinishedHooks []OnTaskFinished
}

func NewBaseHook() *BaseHook {
	return &BaseHook{}
}

// RegisterOnTaskFinishedHook registers a hook function that is executed once a
// task reaches COMPLETED or FAILED. Hooks run in registration order; the first
// error stops the chain.
func (b *BaseHook) RegisterOnTaskFinishedHook(hook OnTaskFinished) {
	b.OnTaskFinishedHooks = append(b.OnTaskFinishedHooks, hook)
}

func (b *BaseHook) OnTaskFinished(ctx context.Context, task taskcore.Snapshot) error {
	for _, hook := range b.OnTaskFinishedHooks {
		if err := hook(ctx, task); err != nil {
			return err
		}
	}
	return nil
}
