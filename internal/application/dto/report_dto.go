package dto

import "github.com/shopspring/decimal"

// ReportRowDTO fila del reporte de stock.
type ReportRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Qty          int    `json:"qty"`
	Status       string `json:"status"`       // in-stock | low-stock | out-of-stock
	StatusLabel  string `json:"status_label"` // In Stock | Low Stock | Out of Stock
}

// StockReportDTO respuesta de GET /api/reports/stock.
type StockReportDTO struct {
	Rows                []ReportRowDTO `json:"rows"`
	TotalItems          int            `json:"total_items"`
	LowStockCount       int            `json:"low_stock_count"`
	ActiveLocationCount int            `json:"active_location_count"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// TotalValue es un valor ilustrativo (productos*1000 + movimientos*50), no una valoración.
type DashboardSummaryDTO struct {
	TotalProducts  int             `json:"total_products"`
	TotalLocations int             `json:"total_locations"`
	TotalMovements int             `json:"total_movements"`
	TotalValue     decimal.Decimal `json:"total_value" swaggertype:"string"`
}

// ActivityDTO entrada del feed de actividad reciente.
type ActivityDTO struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	At      string `json:"at"` // RFC 3339
}
