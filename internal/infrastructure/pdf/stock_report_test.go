package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/pdf"
)

func TestRenderStock_GeneraPDF(t *testing.T) {
	snap := &inventory.Snapshot{
		Stages: []entity.Warehouse{entity.WarehouseWIP, entity.WarehouseFinishedGoods},
		ShoeStock: map[entity.Warehouse][]*entity.ShoeStock{
			entity.WarehouseWIP: {
				{ID: "s1", ShoeType: "Oxford", Size: 41, Quantity: 1200, Warehouse: entity.WarehouseWIP},
			},
		},
		LeatherStock: []*entity.LeatherStock{
			{ID: "l1", LeatherName: "Nappa", Supplier: "CV Jaya", Quantity: decimal.RequireFromString("12.5")},
		},
	}

	out, err := pdf.NewStockReportGenerator("Gudang Sepatu").
		RenderStock(context.Background(), snap, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "cabecera PDF")
	assert.Greater(t, len(out), 500)
}

func TestRenderStock_SnapshotVacio(t *testing.T) {
	snap := &inventory.Snapshot{
		Stages:    []entity.Warehouse{entity.WarehouseWIP},
		ShoeStock: map[entity.Warehouse][]*entity.ShoeStock{},
	}
	out, err := pdf.NewStockReportGenerator("Gudang Sepatu").RenderStock(context.Background(), snap, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
