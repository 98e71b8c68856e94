// Package filestore persiste el snapshot en un archivo JSON local (driver por defecto).
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/snapshot"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository lee y escribe el documento completo en path.
type SnapshotRepository struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotRepository construye el adaptador sobre el archivo indicado.
func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

// Path ruta del archivo.
func (r *SnapshotRepository) Path() string { return r.path }

// Load devuelve nil si el archivo aún no existe.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}
	return snapshot.Decode(data)
}

// Save escribe en un temporal y lo renombra para no dejar archivos a medias.
func (r *SnapshotRepository) Save(ctx context.Context, snap *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}
	return nil
}
