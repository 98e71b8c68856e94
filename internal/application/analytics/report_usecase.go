package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

const reportTitle = "Stock Report"

// ReportUseCase reporte de stock por ubicación y sus exportaciones.
type ReportUseCase struct {
	store InventoryReader
	pdf   ReportPDFGenerator
	xml   ReportXMLEncoder
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(store InventoryReader, pdf ReportPDFGenerator, xml ReportXMLEncoder) *ReportUseCase {
	return &ReportUseCase{store: store, pdf: pdf, xml: xml, now: time.Now}
}

// GetStockReport reporte actual como DTO.
func (uc *ReportUseCase) GetStockReport(_ context.Context) dto.StockReportDTO {
	return ToStockReportDTO(uc.store.BuildReport())
}

// ExportPDF devuelve el PDF del reporte y un nombre de archivo sugerido.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, string, error) {
	doc := uc.document()
	b, err := uc.pdf.GenerateStockReportPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("reporte pdf: %w", err)
	}
	return b, filename(doc.GeneratedAt, "pdf"), nil
}

// ExportXML devuelve el XML del reporte y un nombre de archivo sugerido.
func (uc *ReportUseCase) ExportXML(ctx context.Context) ([]byte, string, error) {
	doc := uc.document()
	b, err := uc.xml.EncodeStockReport(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("reporte xml: %w", err)
	}
	return b, filename(doc.GeneratedAt, "xml"), nil
}

func (uc *ReportUseCase) document() ReportDocument {
	return ReportDocument{
		Title:       reportTitle,
		GeneratedAt: uc.now(),
		Report:      uc.store.BuildReport(),
	}
}

func filename(at time.Time, ext string) string {
	return fmt.Sprintf("stock-report-%s.%s", at.Format("20060102-150405"), ext)
}

// ToStockReportDTO convierte el reporte de dominio.
func ToStockReportDTO(r dominv.Report) dto.StockReportDTO {
	rows := make([]dto.ReportRowDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, dto.ReportRowDTO{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			LocationID:   row.LocationID,
			LocationName: row.LocationName,
			Qty:          row.Qty,
			Status:       string(row.Status),
			StatusLabel:  row.Status.Label(),
		})
	}
	return dto.StockReportDTO{
		Rows:                rows,
		TotalItems:          r.TotalItems,
		LowStockCount:       r.LowStockCount,
		ActiveLocationCount: r.ActiveLocationCount,
	}
}
