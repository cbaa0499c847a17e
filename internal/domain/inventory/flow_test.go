package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de flujo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlow_ConFinishing(t *testing.T) {
	f := inventory.NewFlow(true)

	cases := map[entity.Warehouse]entity.Warehouse{
		entity.WarehouseWIP:            entity.WarehouseNearlyFinished,
		entity.WarehouseNearlyFinished: entity.WarehouseFinishing,
		entity.WarehouseFinishing:      entity.WarehouseFinishedGoods,
	}
	for from, want := range cases {
		got, err := f.Next(from)
		require.NoError(t, err, "from=%s", from)
		assert.Equal(t, want, got, "from=%s", from)
	}
	assert.True(t, f.HasStage(entity.WarehouseFinishing))
}

func TestFlow_SinFinishing(t *testing.T) {
	f := inventory.NewFlow(false)

	got, err := f.Next(entity.WarehouseNearlyFinished)
	require.NoError(t, err)
	assert.Equal(t, entity.WarehouseFinishedGoods, got)

	_, err = f.Next(entity.WarehouseFinishing)
	assert.ErrorIs(t, err, domain.ErrInvalidTransferFlow)
	assert.False(t, f.HasStage(entity.WarehouseFinishing))
}

// Terminal, cuero y valores desconocidos no tienen sucesor.
func TestFlow_SinSucesor(t *testing.T) {
	for _, withFinishing := range []bool{true, false} {
		f := inventory.NewFlow(withFinishing)
		for _, from := range []entity.Warehouse{entity.WarehouseFinishedGoods, entity.WarehouseLeather, "gudang_x", ""} {
			_, err := f.Next(from)
			assert.ErrorIs(t, err, domain.ErrInvalidTransferFlow, "from=%q", from)
		}
	}
}

func TestFlow_StagesEsCopia(t *testing.T) {
	f := inventory.NewFlow(true)
	stages := f.Stages()
	stages[0] = entity.WarehouseLeather
	assert.Equal(t, entity.WarehouseWIP, f.Stages()[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateLeatherQuantity(t *testing.T) {
	ok := []string{"12.5", "0.01", "2", "100.25", "999999999999.99"}
	for _, s := range ok {
		assert.NoError(t, inventory.ValidateLeatherQuantity("quantity", decimal.RequireFromString(s), false), s)
	}
	bad := []string{"0", "-1", "1.005", "0.001", "1000000000000", "1e15"}
	for _, s := range bad {
		err := inventory.ValidateLeatherQuantity("quantity", decimal.RequireFromString(s), false)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, s)
	}
	assert.NoError(t, inventory.ValidateLeatherQuantity("newQuantity", decimal.Zero, true))
}

func TestValidateShoeQuantity(t *testing.T) {
	assert.NoError(t, inventory.ValidateShoeQuantity("quantity", 1, false))
	assert.ErrorIs(t, inventory.ValidateShoeQuantity("quantity", 0, false), domain.ErrInvalidInput)
	assert.NoError(t, inventory.ValidateShoeQuantity("newQuantity", 0, true))
	assert.ErrorIs(t, inventory.ValidateShoeQuantity("newQuantity", -3, true), domain.ErrInvalidInput)
	assert.NoError(t, inventory.ValidateShoeQuantity("quantity", inventory.MaxShoeQuantity, false))
	assert.ErrorIs(t, inventory.ValidateShoeQuantity("quantity", inventory.MaxShoeQuantity+1, false), domain.ErrInvalidInput)
}

func TestCheckTotales(t *testing.T) {
	assert.NoError(t, inventory.CheckLeatherTotal("quantity", inventory.MaxLeatherQuantity))
	assert.ErrorIs(t, inventory.CheckLeatherTotal("quantity", inventory.MaxLeatherQuantity.Add(decimal.RequireFromString("0.01"))),
		domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.CheckShoeTotal("quantity", inventory.MaxShoeQuantity+1), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas
// ──────────────────────────────────────────────────────────────────────────────

func TestNotes(t *testing.T) {
	assert.Equal(t, "Penjualan", inventory.SaleNote(""))
	assert.Equal(t, "Penjualan ke: Toko Abadi", inventory.SaleNote("Toko Abadi"))
	assert.Equal(t, "Dikeluarkan ke: Maklun A", inventory.ReleaseNote("Maklun A"))
	assert.Equal(t, "Ket: sisa potong. Dikembalikan oleh: Budi.", inventory.ReturnNote("sisa potong", "Budi"))
	assert.Equal(t, "Transfer ke Gudang Stok Hampir Jadi", inventory.TransferOutNote(entity.WarehouseNearlyFinished, ""))
	assert.Equal(t, "Transfer dari Gudang Stok 1/2 Jadi - Tujuan: Maklun B",
		inventory.TransferInNote(entity.WarehouseWIP, "Maklun B"))
	assert.Equal(t, "Penyesuaian Stok (Supplier: CV Jaya)", inventory.WithSupplier(inventory.NoteAdjustment, "CV Jaya"))
}

func TestShoeUnits(t *testing.T) {
	n, err := inventory.ShoeUnits("quantity", decimal.NewFromInt(12), false)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = inventory.ShoeUnits("quantity", decimal.RequireFromString("1.5"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err = inventory.ShoeUnits("newQuantity", decimal.Zero, true)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = inventory.ShoeUnits("quantity", decimal.NewFromInt(3_000_000_000), false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ShoeUnits("quantity", decimal.RequireFromString("-1e30"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
