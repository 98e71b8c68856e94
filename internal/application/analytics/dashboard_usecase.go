package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
)

// Coeficientes del valor ilustrativo del dashboard (no es una valoración de inventario).
var (
	placeholderPerProduct  = decimal.NewFromInt(1000)
	placeholderPerMovement = decimal.NewFromInt(50)
)

// DashboardUseCase resumen de conteos y actividad reciente.
type DashboardUseCase struct {
	store InventoryReader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store InventoryReader) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary conteos actuales y valor ilustrativo productos*1000 + movimientos*50.
func (uc *DashboardUseCase) GetSummary(_ context.Context) dto.DashboardSummaryDTO {
	c := uc.store.Counts()
	value := placeholderPerProduct.Mul(decimal.NewFromInt(int64(c.Products))).
		Add(placeholderPerMovement.Mul(decimal.NewFromInt(int64(c.Movements))))
	return dto.DashboardSummaryDTO{
		TotalProducts:  c.Products,
		TotalLocations: c.Locations,
		TotalMovements: c.Movements,
		TotalValue:     value,
	}
}

// GetActivity últimas entradas del feed, más reciente primero.
func (uc *DashboardUseCase) GetActivity(_ context.Context) []dto.ActivityDTO {
	entries := uc.store.Activity()
	out := make([]dto.ActivityDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityDTO{
			ID:      e.ID,
			Message: e.Message,
			At:      e.At.Format(time.RFC3339),
		})
	}
	return out
}
