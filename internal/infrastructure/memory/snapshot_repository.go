// Package memory implementa SnapshotRepository en memoria del proceso (driver "memory" y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// SnapshotRepository guarda una copia del último snapshot recibido.
type SnapshotRepository struct {
	mu    sync.Mutex
	snap  *entity.Snapshot
	saves int
}

// NewSnapshotRepository crea el repositorio; initial puede ser nil.
func NewSnapshotRepository(initial *entity.Snapshot) *SnapshotRepository {
	r := &SnapshotRepository{}
	if initial != nil {
		r.snap = clone(initial)
	}
	return r
}

// Load devuelve una copia del snapshot guardado o nil si no hay ninguno.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		return nil, nil
	}
	return clone(r.snap), nil
}

// Save reemplaza el snapshot guardado.
func (r *SnapshotRepository) Save(ctx context.Context, snap *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = clone(snap)
	r.saves++
	return nil
}

// Saves cantidad de llamadas exitosas a Save.
func (r *SnapshotRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func clone(s *entity.Snapshot) *entity.Snapshot {
	return &entity.Snapshot{
		Products:  append([]entity.Product{}, s.Products...),
		Locations: append([]entity.Location{}, s.Locations...),
		Movements: append([]entity.Movement{}, s.Movements...),
	}
}
