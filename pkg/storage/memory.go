package storage

import (
	"bytes"
	"context"
	"sync"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/google/uuid"
)

type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[uuid.UUID]map[string]codec.FieldData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[uuid.UUID]map[string]codec.FieldData{}}
}

func (s *MemoryStore) Put(_ context.Context, key Key, fd codec.FieldData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.blobs[key.TaskID]
	if !ok {
		fields = map[string]codec.FieldData{}
		s.blobs[key.TaskID] = fields
	}
	fields[key.Field] = codec.FieldData{Data: bytes.Clone(fd.Data), Type: fd.Type}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key Key) (codec.FieldData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fd, ok := s.blobs[key.TaskID][key.Field]
	if !ok {
		return codec.FieldData{}, ErrNotFound
	}
	return codec.FieldData{Data: bytes.Clone(fd.Data), Type: fd.Type}, nil
}

func (s *MemoryStore) Delete(_ context.Context, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, taskID)
	return nil
}

func (s *MemoryStore) Close() {}
