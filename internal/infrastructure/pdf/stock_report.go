// Package pdf genera el informe de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: nombre de la app     │  Laporan Stok + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por almacén del flujo: Tipe | Ukuran | Jumlah + total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Gudang Kulit: Jenis | Supplier | Jumlah + total             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/application/report"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/pkg/locale"
)

var _ report.StockPDFRenderer = (*StockReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 94, Green: 53, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 240, Green: 234, Blue: 226}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa report.StockPDFRenderer usando Maroto v2.
type StockReportGenerator struct {
	appName string
}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator(appName string) *StockReportGenerator {
	return &StockReportGenerator{appName: appName}
}

// RenderStock genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) RenderStock(_ context.Context, snap *inventory.Snapshot, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Stok", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, w := range snap.Stages {
		m.AddRows(sectionTitleRow(w.DisplayName()))
		m.AddRows(shoeStockRows(snap.ShoeStock[w])...)
	}

	m.AddRows(sectionTitleRow(entity.WarehouseLeather.DisplayName()))
	m.AddRows(leatherStockRows(snap.LeatherStock)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("LAPORAN STOK", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Per "+locale.Date(at)+" "+at.Format("15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4}),
	))
}

func tableHeaderRow(labels [3]string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h(labels[0], 6, align.Left),
		h(labels[1], 3, align.Left),
		h(labels[2], 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func cellRow(a, b, c string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(5).Add(
		col.New(6).Add(text.New(a, props.Text{Size: 8, Style: style, Left: 1})),
		col.New(3).Add(text.New(b, props.Text{Size: 8, Style: style, Left: 1})),
		col.New(3).Add(text.New(c, props.Text{Size: 8, Style: style, Align: align.Right, Right: 1})),
	)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Tidak ada stok", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func shoeStockRows(items []*entity.ShoeStock) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := []core.Row{tableHeaderRow([3]string{"Tipe Sepatu", "Ukuran", "Jumlah (pasang)"})}
	total := 0
	for _, it := range items {
		rows = append(rows, cellRow(it.ShoeType, fmt.Sprint(it.Size), locale.Int(it.Quantity), false))
		total += it.Quantity
	}
	return append(rows, cellRow("Total", "", locale.Int(total), true))
}

func leatherStockRows(items []*entity.LeatherStock) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := []core.Row{tableHeaderRow([3]string{"Jenis Kulit", "Supplier", "Jumlah"})}
	total := decimal.Zero
	for _, it := range items {
		rows = append(rows, cellRow(it.LeatherName, it.Supplier, locale.Quantity(it.Quantity), false))
		total = total.Add(it.Quantity)
	}
	return append(rows, cellRow("Total", "", locale.Quantity(total), true))
}
