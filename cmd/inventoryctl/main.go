// inventoryctl opera sin servidor sobre el archivo de snapshot: siembra datos, imprime el
// reporte de stock, consulta un producto y exporta el reporte a PDF o XML.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "inventoryctl",
		Usage: "herramientas de línea de comandos para el snapshot de inventario",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "data/inventoryPro.json",
				EnvVars: []string{"STORE_FILE_PATH"},
				Usage:   "archivo JSON del snapshot",
			},
			&cli.StringFlag{
				Name:    "collation",
				EnvVars: []string{"REPORT_COLLATION"},
				Usage:   "idioma para ordenar el reporte (ej. es); vacío = orden de bytes",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "carga los datos de ejemplo si el snapshot está vacío",
				Action: seedAction,
			},
			{
				Name:   "report",
				Usage:  "imprime el reporte de stock por ubicación",
				Action: reportAction,
			},
			{
				Name:  "stock",
				Usage: "stock total de un producto y su desglose por ubicación",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "product", Aliases: []string{"p"}, Required: true},
				},
				Action: stockAction,
			},
			{
				Name:  "export",
				Usage: "exporta el reporte de stock a PDF o XML",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "pdf", Usage: "pdf | xml"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true},
				},
				Action: exportAction,
			},
		},
	}
}
