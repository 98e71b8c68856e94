package inventory

import dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"

// Counts totales de cada colección.
type Counts struct {
	Products  int
	Locations int
	Movements int
}

// TotalStock existencia total del producto (traslados neutros, nunca negativa).
func (s *Store) TotalStock(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dominv.TotalStock(s.movements, productID)
}

// StockByLocation existencias por producto y ubicación, sin recortar negativos.
func (s *Store) StockByLocation() dominv.StockLevels {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dominv.StockByLocation(s.movements)
}

// LocationStockItems cantidad de productos distintos con stock positivo en la ubicación.
func (s *Store) LocationStockItems(locationID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dominv.LocationStockItems(dominv.StockByLocation(s.movements), locationID)
}

// BuildReport reporte de stock por ubicación sobre el estado actual.
func (s *Store) BuildReport() dominv.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	levels := dominv.StockByLocation(s.movements)
	return dominv.BuildReport(levels, s.products, s.locations, s.compareFunc())
}

// Counts cuenta productos, ubicaciones y movimientos.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Products:  len(s.products),
		Locations: len(s.locations),
		Movements: len(s.movements),
	}
}

// Activity últimas entradas del feed de actividad, más reciente primero.
func (s *Store) Activity() []ActivityEntry {
	return s.activity.List()
}
