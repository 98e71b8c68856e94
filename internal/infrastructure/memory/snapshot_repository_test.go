package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/memory"
)

func TestSnapshotRepository_VacioDevuelveNil(t *testing.T) {
	repo := memory.NewSnapshotRepository(nil)
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepository_GuardaCopia(t *testing.T) {
	repo := memory.NewSnapshotRepository(nil)
	in := &entity.Snapshot{Products: []entity.Product{{ID: "P1", Name: "Widget"}}}
	require.NoError(t, repo.Save(context.Background(), in))

	in.Products[0].Name = "mutado"

	out, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Widget", out.Products[0].Name)
	assert.Equal(t, 1, repo.Saves())
}

func TestSnapshotRepository_ContextoCancelado(t *testing.T) {
	repo := memory.NewSnapshotRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, repo.Save(ctx, &entity.Snapshot{}))
	_, err := repo.Load(ctx)
	assert.Error(t, err)
}
