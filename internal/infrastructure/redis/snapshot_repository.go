// Package redis guarda el snapshot bajo una sola clave de Redis, como hacía localStorage.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/snapshot"
)

// DefaultKey clave usada si no se configura otra.
const DefaultKey = "inventoryPro"

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// SnapshotRepository adaptador SnapshotRepository sobre Redis.
type SnapshotRepository struct {
	client *redis.Client
	key    string
}

// NewSnapshotRepository abre el cliente y verifica la conexión.
func NewSnapshotRepository(ctx context.Context, cfg Config) (*SnapshotRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a redis %s: %w", cfg.Addr, err)
	}
	return NewSnapshotRepositoryWithClient(client, cfg.Key), nil
}

// NewSnapshotRepositoryWithClient usa un cliente existente.
func NewSnapshotRepositoryWithClient(client *redis.Client, key string) *SnapshotRepository {
	if key == "" {
		key = DefaultKey
	}
	return &SnapshotRepository{client: client, key: key}
}

// Load devuelve nil si la clave no existe.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return snapshot.Decode(data)
}

// Save sobrescribe la clave sin expiración.
func (r *SnapshotRepository) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Close cierra el cliente.
func (r *SnapshotRepository) Close() error {
	return r.client.Close()
}
