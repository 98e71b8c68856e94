package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	require.NoError(t, app.Run(append([]string{"inventoryctl"}, args...)), errOut.String())
	return out.String()
}

func TestSeedReportStock(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inventory.json")

	assert.Contains(t, run(t, "--file", file, "seed"), "cargados")
	assert.Contains(t, run(t, "--file", file, "seed"), "no está vacío")

	report := run(t, "--file", file, "report")
	assert.Contains(t, report, "Laptop")
	assert.Contains(t, report, "Main Warehouse")
	assert.Contains(t, report, "total items: 35")

	stock := run(t, "--file", file, "stock", "--product", "PROD001")
	assert.Contains(t, stock, "Laptop (PROD001): 20")
	assert.Contains(t, stock, "WH001")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inventory.json")
	run(t, "--file", file, "seed")

	xmlOut := filepath.Join(dir, "report.xml")
	run(t, "--file", file, "export", "--format", "xml", "--out", xmlOut)
	b, err := os.ReadFile(xmlOut)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<stockReport")

	pdfOut := filepath.Join(dir, "report.pdf")
	run(t, "--file", file, "export", "--out", pdfOut)
	b, err = os.ReadFile(pdfOut)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestExport_FormatoDesconocido(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run([]string{"inventoryctl", "--file", filepath.Join(t.TempDir(), "x.json"), "export", "--format", "csv", "--out", "x"})
	assert.Error(t, err)
}
