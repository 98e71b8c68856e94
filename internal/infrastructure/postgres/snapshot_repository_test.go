package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-pro/pkg/config"
)

// qty debe aceptar cualquier int del movimiento, no solo int4.
func TestSchema_QtyBigint(t *testing.T) {
	assert.Regexp(t, `qty\s+BIGINT NOT NULL`, postgres.Schema)
	assert.NotRegexp(t, `qty\s+INTEGER`, postgres.Schema)
	assert.Contains(t, postgres.Schema, "ALTER COLUMN qty TYPE BIGINT")
}

// Requiere PostgreSQL: POSTGRES_TEST_URL=postgres://... go test ./internal/infrastructure/postgres/...
func TestSnapshotRepo_Integracion(t *testing.T) {
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL no definido")
	}
	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := postgres.NewSnapshotRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Save(ctx, &entity.Snapshot{}))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.Snapshot{
		Products:  []entity.Product{{ID: "P2", Name: "B", CreatedAt: ts}, {ID: "P1", Name: "A", CreatedAt: ts}},
		Locations: []entity.Location{{ID: "L1", Name: "Main", CreatedAt: ts}},
		Movements: []entity.Movement{
			{ID: 2, ProductID: "P1", Direction: entity.Outbound{From: "L1"}, Qty: 1, Timestamp: ts},
			{ID: 1, ProductID: "GONE", Direction: entity.Transfer{From: "L1", To: "L9"}, Qty: 4, Timestamp: ts},
			{ID: 3, ProductID: "P1", Direction: entity.Inbound{To: "L1"}, Qty: 3_000_000_000, Timestamp: ts},
		},
	}))

	snap, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "P2", snap.Products[0].ID, "se conserva el orden de inserción")
	require.Len(t, snap.Movements, 3)
	assert.Equal(t, entity.Outbound{From: "L1"}, snap.Movements[0].Direction)
	assert.Equal(t, entity.Transfer{From: "L1", To: "L9"}, snap.Movements[1].Direction)
	assert.Equal(t, 3_000_000_000, snap.Movements[2].Qty, "qty fuera del rango int4")

	require.NoError(t, repo.Save(ctx, &entity.Snapshot{}))
}
