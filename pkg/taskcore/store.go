package taskcore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]Snapshot
}

func NewTaskStore() TaskStoreInterface {
	return &TaskStore{
		tasks: map[uuid.UUID]Snapshot{},
	}
}

func (s *TaskStore) Create(_ context.Context, task Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; ok {
		return ErrTaskExists
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *TaskStore) Get(_ context.Context, id uuid.UUID) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return Snapshot{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskStore) Update(_ context.Context, task Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return ErrTaskNotFound
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *TaskStore) PurgeFinishedBefore(_ context.Context, t time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged []uuid.UUID
	for id, task := range s.tasks {
		if task.State.Terminal() && task.UpdatedAt.Before(t) {
			delete(s.tasks, id)
			purged = append(purged, id)
		}
	}
	return purged, nil
}

func (s *TaskStore) CountActive(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, task := range s.tasks {
		if !task.State.Terminal() {
			n++
		}
	}
	return n
}
