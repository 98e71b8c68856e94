package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-pro/internal/application/analytics"
	"github.com/jhoicas/inventory-pro/internal/application/dto"
)

// ReportHandler reporte de stock y sus exportaciones.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockReport godoc
// @Summary      Reporte de stock por ubicación
// @Description  search filtra solo las filas; los contadores resumen todo el reporte.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por texto"
// @Success      200     {object}  dto.StockReportDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	report := h.uc.GetStockReport(c.UserContext())
	q := c.Query("search")
	rows := make([]dto.ReportRowDTO, 0, len(report.Rows))
	for _, r := range report.Rows {
		if matchesSearch(q, r.ProductName, r.LocationName, strconv.Itoa(r.Qty), r.StatusLabel) {
			rows = append(rows, r)
		}
	}
	report.Rows = rows
	return c.JSON(report)
}

// StockReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockReportPDF(c *fiber.Ctx) error {
	b, name, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, b, name, "application/pdf")
}

// StockReportXML godoc
// @Summary      Reporte de stock en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.xml [get]
func (h *ReportHandler) StockReportXML(c *fiber.Ctx) error {
	b, name, err := h.uc.ExportXML(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, b, name, "application/xml")
}

func sendAttachment(c *fiber.Ctx, b []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
