// Package inventory contiene las reglas puras del motor de stock: validación de movimientos,
// cálculo de existencias a partir del log, reescritura de referencias y el reporte de stock.
// Nada aquí guarda estado; todo se recalcula sobre el log completo en cada llamada.
package inventory

import "github.com/jhoicas/inventory-pro/internal/domain/entity"

// StockLevels existencias calculadas: productID → locationID → cantidad.
type StockLevels map[string]map[string]int

// TotalStock suma entradas y resta salidas del producto en todas las ubicaciones.
// Los traslados no cambian el total. Un resultado negativo se reporta como 0.
func TotalStock(movements []entity.Movement, productID string) int {
	total := 0
	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		switch m.Direction.(type) {
		case entity.Inbound:
			total += m.Qty
		case entity.Outbound:
			total -= m.Qty
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// StockByLocation suma qty en el destino y resta qty en el origen de cada movimiento,
// de forma independiente (un traslado mueve qty de origen a destino).
// No se recorta a cero: una ubicación puede quedar negativa si el log es inconsistente.
func StockByLocation(movements []entity.Movement) StockLevels {
	levels := make(StockLevels)
	for _, m := range movements {
		byLoc, ok := levels[m.ProductID]
		if !ok {
			byLoc = make(map[string]int)
			levels[m.ProductID] = byLoc
		}
		if to := m.To(); to != "" {
			byLoc[to] += m.Qty
		}
		if from := m.From(); from != "" {
			byLoc[from] -= m.Qty
		}
	}
	return levels
}

// LocationStockItems cuenta los productos distintos con stock positivo en una ubicación.
func LocationStockItems(levels StockLevels, locationID string) int {
	n := 0
	for _, byLoc := range levels {
		if byLoc[locationID] > 0 {
			n++
		}
	}
	return n
}
