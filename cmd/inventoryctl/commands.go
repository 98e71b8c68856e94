package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	appanalytics "github.com/jhoicas/inventory-pro/internal/application/analytics"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/inventory-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/xmlexport"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

func openStore(c *cli.Context) (*inventory.Store, error) {
	log := logger.New(logger.Config{Env: "production", Level: c.String("log-level"), Output: c.App.ErrWriter})
	opts := []inventory.Option{inventory.WithLogger(log.Component("store"))}
	if tag := c.String("collation"); tag != "" {
		t, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("collation %q: %w", tag, err)
		}
		opts = append(opts, inventory.WithCollation(t))
	}
	s := inventory.NewStore(filestore.NewSnapshotRepository(c.String("file")), opts...)
	s.Init(c.Context)
	return s, nil
}

func seedAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}
	if s.SeedSampleData(c.Context) {
		fmt.Fprintf(c.App.Writer, "datos de ejemplo cargados en %s\n", c.String("file"))
		return nil
	}
	fmt.Fprintln(c.App.Writer, "el snapshot no está vacío, no se cargó nada")
	return nil
}

func reportAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}
	r := s.BuildReport()
	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tLOCATION\tQTY\tSTATUS")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", row.ProductName, row.LocationName, row.Qty, row.Status.Label())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "\ntotal items: %d  low stock: %d  active locations: %d\n",
		r.TotalItems, r.LowStockCount, r.ActiveLocationCount)
	return nil
}

func stockAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}
	id := c.String("product")
	name := id
	if p, ok := s.Product(id); ok {
		name = p.Name + " (" + id + ")"
	}
	fmt.Fprintf(c.App.Writer, "%s: %d\n", name, s.TotalStock(id))

	byLoc := s.StockByLocation()[id]
	locs := make([]string, 0, len(byLoc))
	for loc := range byLoc {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	for _, loc := range locs {
		fmt.Fprintf(c.App.Writer, "  %s\t%d\n", loc, byLoc[loc])
	}
	return nil
}

func exportAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}
	uc := appanalytics.NewReportUseCase(s, infrapdf.NewMarotoPDFGenerator("inventoryctl"), xmlexport.NewStockReportEncoder())

	var data []byte
	switch format := c.String("format"); format {
	case "pdf":
		data, _, err = uc.ExportPDF(c.Context)
	case "xml":
		data, _, err = uc.ExportXML(c.Context)
	default:
		return fmt.Errorf("formato no soportado: %q", format)
	}
	if err != nil {
		return err
	}
	out := c.String("out")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", out, err)
	}
	fmt.Fprintf(c.App.Writer, "reporte escrito en %s (%d bytes)\n", out, len(data))
	return nil
}
