package storage

import (
	"context"
	"testing"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	taskID := uuid.New()
	key := Key{TaskID: taskID, Field: "result"}

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, s.Put(ctx, key, codec.FieldData{Data: data, Type: codec.ImagePNG}))

	// the store keeps its own copy
	data[0] = 0
	fd, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, codec.FieldData{Data: []byte{0x89, 'P', 'N', 'G'}, Type: codec.ImagePNG}, fd)

	other := Key{TaskID: uuid.New(), Field: "result"}
	require.NoError(t, s.Put(ctx, other, codec.FieldData{Data: []byte("x"), Type: codec.TextPlain}))

	require.NoError(t, s.Delete(ctx, taskID))
	_, err = s.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, other)
	require.NoError(t, err)
}

func TestKeyString(t *testing.T) {
	id := uuid.MustParse("8d3c1f0e-2b7a-4d9e-9c1f-6a5b4c3d2e1f")
	require.Equal(t, "8d3c1f0e-2b7a-4d9e-9c1f-6a5b4c3d2e1f/result", Key{TaskID: id, Field: "result"}.String())
}

func TestNewBlobStoreDefaultsToMemory(t *testing.T) {
	s, err := NewBlobStore(&config.Config{})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)
}
