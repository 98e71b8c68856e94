package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del almacén completo (DIP).
// Semántica de snapshot: Save recibe siempre las tres colecciones enteras.
type SnapshotRepository interface {
	// Load devuelve el último snapshot guardado; nil (sin error) si no hay nada guardado.
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}
