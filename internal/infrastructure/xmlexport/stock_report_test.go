package xmlexport_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/application/analytics"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/xmlexport"
)

func TestEncodeStockReport(t *testing.T) {
	doc := analytics.ReportDocument{
		Title:       "Stock Report",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Report: dominv.Report{
			Rows: []dominv.ReportRow{
				{ProductID: "P1", ProductName: "Widget & Co", LocationID: "L1", LocationName: "Main", Qty: 6, Status: dominv.StatusInStock},
				{ProductID: "P1", ProductName: "Widget & Co", LocationID: "L2", LocationName: "Store", Qty: 3, Status: dominv.StatusLowStock},
			},
			TotalItems:          9,
			LowStockCount:       1,
			ActiveLocationCount: 2,
		},
	}

	b, err := xmlexport.NewStockReportEncoder().EncodeStockReport(context.Background(), doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(b))
	root := parsed.SelectElement("stockReport")
	require.NotNil(t, root)
	assert.Equal(t, "2024-03-01T10:00:00Z", root.SelectAttrValue("generatedAt", ""))
	assert.Equal(t, "9", root.SelectElement("summary").SelectAttrValue("totalItems", ""))

	rows := root.FindElements("./rows/row")
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget & Co", rows[0].SelectElement("product").Text(), "el texto se escapa y se recupera intacto")
	assert.Equal(t, "low-stock", rows[1].SelectAttrValue("status", ""))
	assert.Equal(t, "3", rows[1].SelectElement("qty").Text())
}

func TestEncodeStockReport_Vacio(t *testing.T) {
	b, err := xmlexport.NewStockReportEncoder().EncodeStockReport(context.Background(), analytics.ReportDocument{Title: "Stock Report"})
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(b))
	assert.Empty(t, parsed.FindElements("//row"))
}
