package inventory

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// SeedSampleData carga datos de ejemplo si el almacén está completamente vacío.
// Devuelve true si cargó algo.
func (s *Store) SeedSampleData(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 || len(s.locations) > 0 || len(s.movements) > 0 {
		return false
	}

	now := s.now()
	s.products = append(s.products,
		entity.Product{ID: "PROD001", Name: "Laptop", Description: "High-performance laptop", CreatedAt: now},
		entity.Product{ID: "PROD002", Name: "Mouse", Description: "Wireless mouse", CreatedAt: now},
	)
	s.locations = append(s.locations,
		entity.Location{ID: "WH001", Name: "Main Warehouse", Address: "123 Storage Street", CreatedAt: now},
		entity.Location{ID: "STORE01", Name: "Retail Store", Address: "456 Market Road", CreatedAt: now},
	)
	s.movements = append(s.movements,
		entity.Movement{
			ID: s.nextMovementID(now.UnixMilli()), ProductID: "PROD001",
			Direction: entity.Inbound{To: "WH001"}, Qty: 20, Timestamp: now,
		},
		entity.Movement{
			ID: s.nextMovementID(now.UnixMilli()), ProductID: "PROD002",
			Direction: entity.Inbound{To: "STORE01"}, Qty: 15, Timestamp: now,
		},
	)

	s.persist(ctx)
	s.log.Info().Msg("datos de ejemplo cargados")
	return true
}
