package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/xlsx"
)

func TestExportTransactions(t *testing.T) {
	date := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	list := []*entity.Transaction{
		{
			Date: date, Type: entity.TransactionIN, Item: entity.ShoeRef{ShoeType: "Oxford", Size: 41},
			Quantity: decimal.NewFromInt(1200), Warehouse: entity.WarehouseWIP, Source: "Maklun A",
		},
		{
			Date: date, Type: entity.TransactionOUT, Item: entity.LeatherRef{Name: "Nappa"},
			Quantity: decimal.RequireFromString("12.5"), Warehouse: entity.WarehouseLeather,
			Notes: "Dikeluarkan ke: Potong. Dari supplier: CV Jaya.",
		},
	}

	out, err := xlsx.NewTransactionExporter().ExportTransactions(context.Background(), list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tanggal", rows[0][0])
	assert.Equal(t, []string{"2026-03-01 09:30", "IN", "Oxford", "41", "1.200", "Gudang Stok 1/2 Jadi", "Maklun A"}, rows[1])
	assert.Equal(t, "Nappa", rows[2][2])
	assert.Equal(t, "12,5", rows[2][4])
	assert.Equal(t, "Gudang Kulit", rows[2][5])
}
