package inventory

import (
	"sort"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// LowStockThreshold cantidad por debajo de la cual una existencia positiva es "stock bajo".
const LowStockThreshold = 5

// StockStatus clasificación de una fila del reporte.
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

// Label texto visible del estado.
func (s StockStatus) Label() string {
	switch s {
	case StatusLowStock:
		return "Low Stock"
	case StatusOutOfStock:
		return "Out of Stock"
	default:
		return "In Stock"
	}
}

// ClassifyStock devuelve el estado para una cantidad.
// BuildReport descarta cantidades <= 0, así que StatusOutOfStock nunca aparece en sus filas.
func ClassifyStock(qty int) StockStatus {
	switch {
	case qty <= 0:
		return StatusOutOfStock
	case qty < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ReportRow existencia de un producto en una ubicación, lista para mostrar.
type ReportRow struct {
	ProductID    string
	ProductName  string
	LocationID   string
	LocationName string
	Qty          int
	Status       StockStatus
}

// Report vista plana y ordenada del stock por ubicación más contadores de resumen.
type Report struct {
	Rows                []ReportRow
	TotalItems          int
	LowStockCount       int
	ActiveLocationCount int
}

// CompareFunc orden de cadenas para el reporte (negativo, cero o positivo).
type CompareFunc func(a, b string) int

// BuildReport arma el reporte a partir de StockByLocation.
// Omite pares cuyo producto o ubicación ya no existen y pares con qty <= 0.
// Ordena por (nombre de producto, nombre de ubicación); cmp nil usa strings.Compare.
func BuildReport(levels StockLevels, products []entity.Product, locations []entity.Location, cmp CompareFunc) Report {
	if cmp == nil {
		cmp = strings.Compare
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	locationNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.ID] = l.Name
	}

	report := Report{Rows: []ReportRow{}}
	active := make(map[string]struct{})

	for productID, byLoc := range levels {
		productName, ok := productNames[productID]
		if !ok {
			continue
		}
		for locationID, qty := range byLoc {
			if qty <= 0 {
				continue
			}
			locationName, ok := locationNames[locationID]
			if !ok {
				continue
			}
			status := ClassifyStock(qty)
			report.Rows = append(report.Rows, ReportRow{
				ProductID:    productID,
				ProductName:  productName,
				LocationID:   locationID,
				LocationName: locationName,
				Qty:          qty,
				Status:       status,
			})
			report.TotalItems += qty
			if status == StatusLowStock {
				report.LowStockCount++
			}
			active[locationID] = struct{}{}
		}
	}
	report.ActiveLocationCount = len(active)

	// Los ids desempatan para que el orden no dependa del recorrido de los mapas.
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if c := cmp(a.ProductName, b.ProductName); c != 0 {
			return c < 0
		}
		if c := cmp(a.LocationName, b.LocationName); c != 0 {
			return c < 0
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.LocationID < b.LocationID
	})
	return report
}
