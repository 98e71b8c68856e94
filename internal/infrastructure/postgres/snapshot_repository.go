package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// Schema tablas del snapshot. position conserva el orden de inserción de cada colección.
// qty es BIGINT igual que el int del movimiento; el ALTER migra tablas creadas con INTEGER.
const Schema = `
CREATE TABLE IF NOT EXISTS inv_products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	position    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS inv_locations (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	address    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	position   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS inv_movements (
	id            BIGINT PRIMARY KEY,
	product_id    TEXT NOT NULL,
	from_location TEXT NULL,
	to_location   TEXT NULL,
	qty           BIGINT NOT NULL CHECK (qty > 0),
	ts            TIMESTAMPTZ NOT NULL,
	position      INTEGER NOT NULL,
	CHECK (from_location IS NOT NULL OR to_location IS NOT NULL)
);
ALTER TABLE inv_movements ALTER COLUMN qty TYPE BIGINT;`

// SnapshotRepo guarda el snapshot en tres tablas; cada Save reemplaza el contenido en una transacción.
// Sin claves foráneas: los movimientos pueden referenciar productos o ubicaciones borrados.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea las tablas si no existen.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Load devuelve nil si las tres tablas están vacías.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}
	var err error
	if snap.Products, err = loadProducts(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Locations, err = loadLocations(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Movements, err = loadMovements(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.IsEmpty() {
		return nil, nil
	}
	return snap, nil
}

// Save reemplaza las tres tablas con el snapshot recibido.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `TRUNCATE inv_products, inv_locations, inv_movements`); err != nil {
			return fmt.Errorf("truncate snapshot: %w", err)
		}

		products := make([][]any, 0, len(snap.Products))
		for i, p := range snap.Products {
			products = append(products, []any{p.ID, p.Name, p.Description, p.CreatedAt, i})
		}
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"inv_products"},
			[]string{"id", "name", "description", "created_at", "position"},
			pgx.CopyFromRows(products)); err != nil {
			return wrapErr("copy products", err)
		}

		locations := make([][]any, 0, len(snap.Locations))
		for i, l := range snap.Locations {
			locations = append(locations, []any{l.ID, l.Name, l.Address, l.CreatedAt, i})
		}
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"inv_locations"},
			[]string{"id", "name", "address", "created_at", "position"},
			pgx.CopyFromRows(locations)); err != nil {
			return wrapErr("copy locations", err)
		}

		movements := make([][]any, 0, len(snap.Movements))
		for i, m := range snap.Movements {
			movements = append(movements, []any{m.ID, m.ProductID, nullable(m.From()), nullable(m.To()), m.Qty, m.Timestamp, i})
		}
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"inv_movements"},
			[]string{"id", "product_id", "from_location", "to_location", "qty", "ts", "position"},
			pgx.CopyFromRows(movements)); err != nil {
			return wrapErr("copy movements", err)
		}
		return nil
	})
}

func loadProducts(ctx context.Context, q Querier) ([]entity.Product, error) {
	rows, err := q.Query(ctx, `SELECT id, name, description, created_at FROM inv_products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func loadLocations(ctx context.Context, q Querier) ([]entity.Location, error) {
	rows, err := q.Query(ctx, `SELECT id, name, address, created_at FROM inv_locations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	list := []entity.Location{}
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func loadMovements(ctx context.Context, q Querier) ([]entity.Movement, error) {
	rows, err := q.Query(ctx, `
		SELECT id, product_id, from_location, to_location, qty, ts
		FROM inv_movements ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := []entity.Movement{}
	for rows.Next() {
		var (
			m        entity.Movement
			from, to *string
			ts       time.Time
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &from, &to, &m.Qty, &ts); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Timestamp = ts
		m.Direction, _ = entity.NewDirection(deref(from), deref(to))
		list = append(list, m)
	}
	return list, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
