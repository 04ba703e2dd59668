package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cbodonnell/collide/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRepositoryScenes runs the scene lifecycle against an empty repository.
func testRepositoryScenes(t *testing.T, repository Repository) {
	t.Helper()
	ctx := context.Background()

	scenes, err := repository.ListScenes(ctx)
	require.NoError(t, err)
	assert.Empty(t, scenes)

	first := &models.Scene{
		ID:        "9f1c1a52-6d1e-4d8e-9b1a-0c2f3e4d5a6b",
		Name:      "first",
		Data:      []byte{1, 2, 3},
		CreatedAt: time.UnixMilli(1000).UTC(),
	}
	second := &models.Scene{
		ID:        "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
		Name:      "second",
		Data:      []byte{4, 5},
		CreatedAt: time.UnixMilli(2000).UTC(),
	}
	require.NoError(t, repository.SaveScene(ctx, second))
	require.NoError(t, repository.SaveScene(ctx, first))

	got, err := repository.LoadScene(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	scenes, err = repository.ListScenes(ctx)
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, "first", scenes[0].Name)
	assert.Equal(t, "second", scenes[1].Name)
	assert.Nil(t, scenes[0].Data)

	renamed := *first
	renamed.Name = "renamed"
	require.NoError(t, repository.SaveScene(ctx, &renamed))
	got, err = repository.LoadScene(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	require.NoError(t, repository.DeleteScene(ctx, first.ID))
	_, err = repository.LoadScene(ctx, first.ID)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(repository.DeleteScene(ctx, first.ID)))

	scenes, err = repository.ListScenes(ctx)
	require.NoError(t, err)
	require.Len(t, scenes, 1)
	assert.Equal(t, second.ID, scenes[0].ID)
}
