// Package analytics contiene los casos de uso de lectura: resumen del dashboard,
// feed de actividad y exportación del reporte de stock.
package analytics

import (
	"context"
	"time"

	appinv "github.com/jhoicas/inventory-pro/internal/application/inventory"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// InventoryReader lecturas del almacén que necesita analytics (lo implementa *inventory.Store).
type InventoryReader interface {
	Counts() appinv.Counts
	BuildReport() dominv.Report
	Activity() []appinv.ActivityEntry
}

// ReportDocument datos que se vuelcan al PDF o XML.
type ReportDocument struct {
	Title       string
	GeneratedAt time.Time
	Report      dominv.Report
}

// ReportPDFGenerator genera el PDF del reporte de stock (implementado en infrastructure/pdf).
type ReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, doc ReportDocument) ([]byte, error)
}

// ReportXMLEncoder serializa el reporte de stock a XML (implementado en infrastructure/xmlexport).
type ReportXMLEncoder interface {
	EncodeStockReport(ctx context.Context, doc ReportDocument) ([]byte, error)
}
