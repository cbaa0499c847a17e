// Package xlsx exporta el historial de transacciones a Excel con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/report"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/pkg/locale"
)

var _ report.TransactionExporter = (*TransactionExporter)(nil)

const sheetName = "Transaksi"

var headings = []string{"Tanggal", "Tipe", "Barang", "Ukuran", "Jumlah", "Gudang", "Sumber", "Keterangan"}

// TransactionExporter implementa report.TransactionExporter.
type TransactionExporter struct{}

// NewTransactionExporter construye el exportador.
func NewTransactionExporter() *TransactionExporter { return &TransactionExporter{} }

// ExportTransactions una fila por transacción, en el orden recibido.
func (e *TransactionExporter) ExportTransactions(_ context.Context, list []*entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", boldStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, t := range list {
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), rowValues(t)); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(sheetName, "A", "A", 18)
	_ = f.SetColWidth(sheetName, "C", "C", 24)
	_ = f.SetColWidth(sheetName, "F", "F", 24)
	_ = f.SetColWidth(sheetName, "H", "H", 48)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func rowValues(t *entity.Transaction) *[]any {
	var item, size string
	qty := locale.Quantity(t.Quantity)
	switch ref := t.Item.(type) {
	case entity.ShoeRef:
		item, size = ref.ShoeType, fmt.Sprint(ref.Size)
		qty = locale.Int(int(t.Quantity.IntPart()))
	case entity.LeatherRef:
		item = ref.Name
	}
	return &[]any{
		t.Date.Format("2006-01-02 15:04"),
		string(t.Type),
		item,
		size,
		qty,
		t.Warehouse.DisplayName(),
		t.Source,
		t.Notes,
	}
}
