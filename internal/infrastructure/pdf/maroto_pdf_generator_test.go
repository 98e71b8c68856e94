package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/application/analytics"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/pdf"
)

func TestGenerateStockReportPDF(t *testing.T) {
	doc := analytics.ReportDocument{
		Title:       "Stock Report",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Report: dominv.Report{
			Rows: []dominv.ReportRow{
				{ProductName: "Widget", LocationName: "Main", Qty: 6, Status: dominv.StatusInStock},
				{ProductName: "Widget", LocationName: "Store", Qty: 3, Status: dominv.StatusLowStock},
			},
			TotalItems: 9, LowStockCount: 1, ActiveLocationCount: 2,
		},
	}

	b, err := pdf.NewMarotoPDFGenerator("inventory-pro").GenerateStockReportPDF(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateStockReportPDF_SinFilas(t *testing.T) {
	b, err := pdf.NewMarotoPDFGenerator("inventory-pro").GenerateStockReportPDF(context.Background(),
		analytics.ReportDocument{Title: "Stock Report", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
