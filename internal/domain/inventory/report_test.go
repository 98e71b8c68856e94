package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// Escenario de referencia: Widget entra 10 a WarehouseA y se trasladan 3 a WarehouseB.
func TestBuildReport_EscenarioWidget(t *testing.T) {
	products := []entity.Product{{ID: "P1", Name: "Widget"}}
	locations := []entity.Location{{ID: "L1", Name: "WarehouseA"}, {ID: "L2", Name: "WarehouseB"}}
	movs := []entity.Movement{
		in("P1", "L1", 10),
		transfer("P1", "L1", "L2", 3),
	}

	assert.Equal(t, 10, inventory.TotalStock(movs, "P1"))
	levels := inventory.StockByLocation(movs)
	assert.Equal(t, inventory.StockLevels{"P1": {"L1": 7, "L2": 3}}, levels)

	r := inventory.BuildReport(levels, products, locations, nil)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Widget", r.Rows[0].ProductName)
	assert.Equal(t, "WarehouseA", r.Rows[0].LocationName)
	assert.Equal(t, 7, r.Rows[0].Qty)
	assert.Equal(t, inventory.StatusInStock, r.Rows[0].Status)
	assert.Equal(t, "WarehouseB", r.Rows[1].LocationName)
	assert.Equal(t, 3, r.Rows[1].Qty)
	assert.Equal(t, inventory.StatusLowStock, r.Rows[1].Status)
	assert.Equal(t, 10, r.TotalItems)
	assert.Equal(t, 1, r.LowStockCount)
	assert.Equal(t, 2, r.ActiveLocationCount)
}

func TestBuildReport_OmiteColgantesYNoPositivos(t *testing.T) {
	products := []entity.Product{{ID: "P1", Name: "Widget"}}
	locations := []entity.Location{{ID: "L1", Name: "A"}}
	levels := inventory.StockLevels{
		"P1":    {"L1": 5, "BORRADA": 9, "L0": 0},
		"GHOST": {"L1": 4},
	}
	levels["P1"]["NEG"] = -2

	r := inventory.BuildReport(levels, products, locations, nil)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "A", r.Rows[0].LocationName)
	assert.Equal(t, 5, r.TotalItems)
	assert.Equal(t, 1, r.ActiveLocationCount)
}

func TestBuildReport_OrdenPorProductoYUbicacion(t *testing.T) {
	products := []entity.Product{{ID: "P1", Name: "b-tornillo"}, {ID: "P2", Name: "Arandela"}}
	locations := []entity.Location{{ID: "L1", Name: "Norte"}, {ID: "L2", Name: "Centro"}}
	levels := inventory.StockLevels{
		"P1": {"L1": 6, "L2": 6},
		"P2": {"L1": 6},
	}

	r := inventory.BuildReport(levels, products, locations, nil)
	require.Len(t, r.Rows, 3)
	// Orden de bytes: mayúsculas antes que minúsculas.
	assert.Equal(t, "Arandela", r.Rows[0].ProductName)
	assert.Equal(t, "b-tornillo", r.Rows[1].ProductName)
	assert.Equal(t, "Centro", r.Rows[1].LocationName)
	assert.Equal(t, "Norte", r.Rows[2].LocationName)
}

func TestBuildReport_ComparadorPersonalizado(t *testing.T) {
	products := []entity.Product{{ID: "P1", Name: "alpha"}, {ID: "P2", Name: "Beta"}}
	locations := []entity.Location{{ID: "L1", Name: "X"}}
	levels := inventory.StockLevels{"P1": {"L1": 1}, "P2": {"L1": 1}}

	reverse := func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}
	r := inventory.BuildReport(levels, products, locations, reverse)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, "alpha", r.Rows[0].ProductName)
}

func TestBuildReport_VacioDevuelveFilasVacias(t *testing.T) {
	r := inventory.BuildReport(inventory.StockLevels{}, nil, nil, nil)
	assert.NotNil(t, r.Rows)
	assert.Empty(t, r.Rows)
	assert.Zero(t, r.TotalItems)
}

func TestClassifyStock(t *testing.T) {
	assert.Equal(t, inventory.StatusOutOfStock, inventory.ClassifyStock(0))
	assert.Equal(t, inventory.StatusLowStock, inventory.ClassifyStock(1))
	assert.Equal(t, inventory.StatusLowStock, inventory.ClassifyStock(4))
	assert.Equal(t, inventory.StatusInStock, inventory.ClassifyStock(5))
	assert.Equal(t, "Low Stock", inventory.StatusLowStock.Label())
}
