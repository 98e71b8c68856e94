// Package xmlexport serializa el reporte de stock a XML con etree.
//
//	<stockReport generatedAt="..." title="...">
//	  <summary totalItems="9" lowStockCount="1" activeLocations="2"/>
//	  <rows>
//	    <row productId="P1" locationId="L1" status="in-stock">
//	      <product>Widget</product><location>Main</location><qty>6</qty>
//	    </row>
//	  </rows>
//	</stockReport>
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventory-pro/internal/application/analytics"
)

var _ analytics.ReportXMLEncoder = (*StockReportEncoder)(nil)

// StockReportEncoder implementa analytics.ReportXMLEncoder.
type StockReportEncoder struct{}

// NewStockReportEncoder construye el encoder.
func NewStockReportEncoder() *StockReportEncoder { return &StockReportEncoder{} }

// EncodeStockReport genera el documento XML indentado.
func (e *StockReportEncoder) EncodeStockReport(_ context.Context, doc analytics.ReportDocument) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("stockReport")
	root.CreateAttr("title", doc.Title)
	root.CreateAttr("generatedAt", doc.GeneratedAt.UTC().Format(time.RFC3339))

	r := doc.Report
	summary := root.CreateElement("summary")
	summary.CreateAttr("totalItems", strconv.Itoa(r.TotalItems))
	summary.CreateAttr("lowStockCount", strconv.Itoa(r.LowStockCount))
	summary.CreateAttr("activeLocations", strconv.Itoa(r.ActiveLocationCount))

	rows := root.CreateElement("rows")
	for _, row := range r.Rows {
		el := rows.CreateElement("row")
		el.CreateAttr("productId", row.ProductID)
		el.CreateAttr("locationId", row.LocationID)
		el.CreateAttr("status", string(row.Status))
		el.CreateElement("product").SetText(row.ProductName)
		el.CreateElement("location").SetText(row.LocationName)
		el.CreateElement("qty").SetText(strconv.Itoa(row.Qty))
	}

	x.Indent(2)
	var buf bytes.Buffer
	if _, err := x.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xmlexport: escribir documento: %w", err)
	}
	return buf.Bytes(), nil
}
