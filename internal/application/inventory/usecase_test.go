package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/memory"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUser = "00000000-0000-0000-0000-0000000000aa"

var fixedNow = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store     *memory.Store
	uc        *inventory.StockUseCase
	snapshots *inventory.SnapshotUseCase
	nappaID   string
}

// newFixture store en memoria con RunPro (40-44) y cuero Nappa registrados.
func newFixture(t *testing.T, withFinishing bool) *fixture {
	t.Helper()
	store := memory.NewStore()
	flow := domaininv.NewFlow(withFinishing)
	f := &fixture{
		store:     store,
		uc:        inventory.NewStockUseCase(store, flow, nil).WithClock(func() time.Time { return fixedNow }),
		snapshots: inventory.NewSnapshotUseCase(store, flow),
	}
	err := store.Run(context.Background(), func(r repository.TxRepos) error {
		if err := r.ShoeMasters.Create(context.Background(), &entity.ShoeMaster{ShoeType: "RunPro", Sizes: []int{40, 41, 42, 43, 44}}); err != nil {
			return err
		}
		nappa := &entity.LeatherMaster{Name: "Nappa"}
		if err := r.LeatherMasters.Create(context.Background(), nappa); err != nil {
			return err
		}
		f.nappaID = nappa.ID
		return nil
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) addShoe(t *testing.T, size, qty int, wh entity.Warehouse) {
	t.Helper()
	require.NoError(t, f.uc.AddShoeStock(context.Background(), inventory.AddShoeInput{
		UserID: testUser, ShoeType: "RunPro", Size: size, Quantity: qty, Warehouse: wh, Source: "Pabrik",
	}))
}

// shoeRow devuelve la fila (RunPro, size, wh) o nil.
func (f *fixture) shoeRow(t *testing.T, size int, wh entity.Warehouse) *entity.ShoeStock {
	t.Helper()
	snap, err := f.snapshots.GetSnapshot(context.Background())
	require.NoError(t, err)
	for _, s := range snap.ShoeStock[wh] {
		if s.ShoeType == "RunPro" && s.Size == size {
			return s
		}
	}
	return nil
}

func (f *fixture) leatherRow(t *testing.T, supplier string) *entity.LeatherStock {
	t.Helper()
	snap, err := f.snapshots.GetSnapshot(context.Background())
	require.NoError(t, err)
	for _, s := range snap.LeatherStock {
		if s.LeatherMasterID == f.nappaID && s.Supplier == supplier {
			return s
		}
	}
	return nil
}

func (f *fixture) transactions(t *testing.T) []*entity.Transaction {
	t.Helper()
	list, err := f.snapshots.ListTransactions(context.Background(), entity.TransactionFilter{})
	require.NoError(t, err)
	return list
}

// shoeTotal suma de RunPro/size en todas las etapas.
func (f *fixture) shoeTotal(t *testing.T, size int) int {
	t.Helper()
	snap, err := f.snapshots.GetSnapshot(context.Background())
	require.NoError(t, err)
	total := 0
	for _, items := range snap.ShoeStock {
		for _, s := range items {
			if s.Size == size {
				total += s.Quantity
			}
		}
	}
	return total
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de calzado
// ──────────────────────────────────────────────────────────────────────────────

func TestAddShoe_CreaFilaYTransaccionIN(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseWIP)

	row := f.shoeRow(t, 42, entity.WarehouseWIP)
	require.NotNil(t, row)
	assert.Equal(t, 10, row.Quantity)

	txs := f.transactions(t)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionIN, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Pabrik", txs[0].Source)
	assert.Equal(t, entity.ShoeRef{ShoeType: "RunPro", Size: 42}, txs[0].Item)
	assert.Equal(t, testUser, txs[0].CreatedBy)
	assert.Equal(t, fixedNow, txs[0].Date)
}

func TestAddShoe_AcumulaEnLaMismaFila(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseWIP)
	f.addShoe(t, 42, 5, entity.WarehouseWIP)

	assert.Equal(t, 15, f.shoeRow(t, 42, entity.WarehouseWIP).Quantity)
	assert.Len(t, f.transactions(t), 2)
}

func TestAddShoe_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	base := inventory.AddShoeInput{UserID: testUser, ShoeType: "RunPro", Size: 42, Quantity: 1, Warehouse: entity.WarehouseWIP, Source: "Pabrik"}

	t.Run("talla no registrada", func(t *testing.T) {
		in := base
		in.Size = 39
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrInvalidInput)
	})
	t.Run("tipo inexistente", func(t *testing.T) {
		in := base
		in.ShoeType = "Nope"
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrMasterNotFound)
	})
	t.Run("cantidad cero", func(t *testing.T) {
		in := base
		in.Quantity = 0
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrInvalidInput)
	})
	t.Run("sin source", func(t *testing.T) {
		in := base
		in.Source = "  "
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrInvalidInput)
	})
	t.Run("finishing desactivado", func(t *testing.T) {
		in := base
		in.Warehouse = entity.WarehouseFinishing
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrInvalidInput)
	})
	t.Run("almacén de cuero", func(t *testing.T) {
		in := base
		in.Warehouse = entity.WarehouseLeather
		assert.ErrorIs(t, f.uc.AddShoeStock(ctx, in), domain.ErrInvalidInput)
	})

	assert.Empty(t, f.transactions(t), "ninguna validación fallida debe escribir en el libro")
}

func TestTransfer_WIPANearlyFinished(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseWIP)
	wip := f.shoeRow(t, 42, entity.WarehouseWIP)

	err := f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: wip.ID, Quantity: 4,
		FromWarehouse: entity.WarehouseWIP, Source: "Maklun A",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, f.shoeRow(t, 42, entity.WarehouseWIP).Quantity)
	nf := f.shoeRow(t, 42, entity.WarehouseNearlyFinished)
	require.NotNil(t, nf)
	assert.Equal(t, 4, nf.Quantity)
	assert.Equal(t, 10, f.shoeTotal(t, 42), "la transferencia conserva el total")

	txs := f.transactions(t)
	require.Len(t, txs, 3)
	var out, in *entity.Transaction
	for _, tx := range txs[:2] {
		switch tx.Type {
		case entity.TransactionOUT:
			out = tx
		case entity.TransactionIN:
			in = tx
		}
	}
	require.NotNil(t, out)
	require.NotNil(t, in)
	assert.Equal(t, entity.WarehouseWIP, out.Warehouse)
	assert.Equal(t, entity.WarehouseNearlyFinished, in.Warehouse)
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, in.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "Maklun A", in.Source)
	assert.Equal(t, "Transfer ke Gudang Stok Hampir Jadi", out.Notes)
	assert.Equal(t, "Transfer dari Gudang Stok 1/2 Jadi", in.Notes)
}

func TestTransfer_DestinoEnNotas(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 41, 3, entity.WarehouseNearlyFinished)
	row := f.shoeRow(t, 41, entity.WarehouseNearlyFinished)

	require.NoError(t, f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 3,
		FromWarehouse: entity.WarehouseNearlyFinished, Source: "Maklun B", Destination: "Lini 2",
	}))

	assert.Nil(t, f.shoeRow(t, 41, entity.WarehouseNearlyFinished), "la fila de origen en 0 se elimina")
	assert.Equal(t, 3, f.shoeRow(t, 41, entity.WarehouseFinishing).Quantity)
	txs := f.transactions(t)
	assert.Contains(t, txs[0].Notes+txs[1].Notes, "Tujuan: Lini 2")
}

func TestTransfer_SinFinishingSaltaAStokJadi(t *testing.T) {
	f := newFixture(t, false)
	f.addShoe(t, 43, 2, entity.WarehouseNearlyFinished)
	row := f.shoeRow(t, 43, entity.WarehouseNearlyFinished)

	require.NoError(t, f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 2,
		FromWarehouse: entity.WarehouseNearlyFinished, Source: "Maklun A",
	}))
	assert.Equal(t, 2, f.shoeRow(t, 43, entity.WarehouseFinishedGoods).Quantity)
}

func TestTransfer_DesdeStokJadiEsInvalido(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 5, entity.WarehouseFinishedGoods)
	row := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)

	err := f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 1,
		FromWarehouse: entity.WarehouseFinishedGoods, Source: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransferFlow)
	assert.Equal(t, 5, f.shoeRow(t, 42, entity.WarehouseFinishedGoods).Quantity)
	assert.Len(t, f.transactions(t), 1)
}

func TestTransfer_FilaDeOtroAlmacen(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 5, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	err := f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 1,
		FromWarehouse: entity.WarehouseNearlyFinished, Source: "X",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_StockInsuficienteEsAtomico(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 3, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	err := f.uc.TransferShoeStock(context.Background(), inventory.TransferShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 4,
		FromWarehouse: entity.WarehouseWIP, Source: "X",
	})
	var serr *domain.InsufficientStockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "3", serr.Available)
	assert.Equal(t, 3, f.shoeRow(t, 42, entity.WarehouseWIP).Quantity)
	assert.Nil(t, f.shoeRow(t, 42, entity.WarehouseNearlyFinished))
	assert.Len(t, f.transactions(t), 1)
}

func TestSell_EliminaFilaEnCero(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 6, entity.WarehouseFinishedGoods)
	row := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)

	require.NoError(t, f.uc.SellShoeStock(context.Background(), inventory.SellShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 6, CustomerName: "Toko Makmur",
	}))

	assert.Nil(t, f.shoeRow(t, 42, entity.WarehouseFinishedGoods))
	txs := f.transactions(t)
	require.Len(t, txs, 2)
	assert.Equal(t, entity.TransactionOUT, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, "Penjualan ke: Toko Makmur", txs[0].Notes)
}

func TestSell_StockInsuficiente(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 3, entity.WarehouseFinishedGoods)
	row := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)

	err := f.uc.SellShoeStock(context.Background(), inventory.SellShoeInput{
		UserID: testUser, ItemID: row.ID, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, f.shoeRow(t, 42, entity.WarehouseFinishedGoods).Quantity)
	assert.Len(t, f.transactions(t), 1, "no se escribe transacción")
}

func TestSell_SoloDesdeStokJadi(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 3, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	err := f.uc.SellShoeStock(context.Background(), inventory.SellShoeInput{UserID: testUser, ItemID: row.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveShoe_NotaDikeluarkan(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 40, 8, entity.WarehouseNearlyFinished)
	row := f.shoeRow(t, 40, entity.WarehouseNearlyFinished)

	require.NoError(t, f.uc.RemoveShoeStock(context.Background(), inventory.RemoveInput{
		UserID: testUser, ItemID: row.ID, Quantity: dec("2"), ReleasedTo: "QC",
	}))
	assert.Equal(t, 6, f.shoeRow(t, 40, entity.WarehouseNearlyFinished).Quantity)
	assert.Equal(t, "Dikeluarkan ke: QC", f.transactions(t)[0].Notes)

	err := f.uc.RemoveShoeStock(context.Background(), inventory.RemoveInput{
		UserID: testUser, ItemID: row.ID, Quantity: dec("1.5"), ReleasedTo: "QC",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el calzado se cuenta en pares enteros")
}

func TestAdjustShoe_RegistraDiferencia(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	require.NoError(t, f.uc.AdjustShoeStock(context.Background(), inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: dec("7"),
	}))
	assert.Equal(t, 7, f.shoeRow(t, 42, entity.WarehouseWIP).Quantity)
	txs := f.transactions(t)
	require.Len(t, txs, 2)
	assert.Equal(t, entity.TransactionOUT, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Penyesuaian Stok", txs[0].Notes)

	require.NoError(t, f.uc.AdjustShoeStock(context.Background(), inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: dec("9"),
	}))
	txs = f.transactions(t)
	require.Len(t, txs, 3)
	assert.Equal(t, entity.TransactionIN, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestAdjustShoe_SinCambioNoEscribe(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	require.NoError(t, f.uc.AdjustShoeStock(context.Background(), inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: dec("10"),
	}))
	assert.Len(t, f.transactions(t), 1)
}

func TestAdjustShoe_ACeroEliminaFila(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 4, entity.WarehouseWIP)
	row := f.shoeRow(t, 42, entity.WarehouseWIP)

	require.NoError(t, f.uc.AdjustShoeStock(context.Background(), inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: decimal.Zero,
	}))
	assert.Nil(t, f.shoeRow(t, 42, entity.WarehouseWIP))

	err := f.uc.AdjustShoeStock(context.Background(), inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteShoe_RegistraOUTPorCantidadPrevia(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 44, 9, entity.WarehouseFinishing)
	row := f.shoeRow(t, 44, entity.WarehouseFinishing)

	require.NoError(t, f.uc.DeleteShoeStock(context.Background(), testUser, row.ID))
	assert.Nil(t, f.shoeRow(t, 44, entity.WarehouseFinishing))
	txs := f.transactions(t)
	require.Len(t, txs, 2)
	assert.Equal(t, entity.TransactionOUT, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(9)))
	assert.Equal(t, "Penghapusan Stok", txs[0].Notes)

	assert.ErrorIs(t, f.uc.DeleteShoeStock(context.Background(), testUser, row.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de cuero
// ──────────────────────────────────────────────────────────────────────────────

func TestLeather_AddYReturnUsanLotesDistintos(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	require.NoError(t, f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("12.5"), Supplier: "CV Jaya",
	}))
	require.NoError(t, f.uc.ReturnLeather(ctx, inventory.ReturnLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("2.0"),
		ReturneeName: "Budi", Notes: "sisa potong",
	}))

	jaya := f.leatherRow(t, "CV Jaya")
	retur := f.leatherRow(t, entity.ReturnSupplier)
	require.NotNil(t, jaya)
	require.NotNil(t, retur)
	assert.True(t, jaya.Quantity.Equal(dec("12.5")))
	assert.True(t, retur.Quantity.Equal(dec("2")))
	assert.Equal(t, "Nappa", jaya.LeatherName)

	txs := f.transactions(t)
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, entity.TransactionIN, tx.Type)
		assert.Equal(t, entity.WarehouseLeather, tx.Warehouse)
		assert.Equal(t, entity.LeatherRef{Name: "Nappa"}, tx.Item)
	}
	assert.Equal(t, "Ket: sisa potong. Dikembalikan oleh: Budi.", txs[0].Notes)
	assert.Equal(t, entity.ReturnSupplier, txs[0].Source)
}

func TestLeather_ReturSoloPorDevolucion(t *testing.T) {
	f := newFixture(t, true)
	err := f.uc.AddLeatherStock(context.Background(), inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("1"), Supplier: "retur",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeather_MaximoDosDecimales(t *testing.T) {
	f := newFixture(t, true)
	err := f.uc.AddLeatherStock(context.Background(), inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("1.125"), Supplier: "CV Jaya",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.transactions(t))
}

func TestLeather_MaestroInexistente(t *testing.T) {
	f := newFixture(t, true)
	err := f.uc.AddLeatherStock(context.Background(), inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: "no-existe", Quantity: dec("1"), Supplier: "CV Jaya",
	})
	assert.ErrorIs(t, err, domain.ErrMasterNotFound)
}

func TestLeather_RemoveAdjustDelete(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("10.25"), Supplier: "CV Jaya",
	}))
	row := f.leatherRow(t, "CV Jaya")

	err := f.uc.RemoveLeatherStock(ctx, inventory.RemoveInput{
		UserID: testUser, ItemID: row.ID, Quantity: dec("11"), ReleasedTo: "Potong",
	})
	var serr *domain.InsufficientStockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "10.25", serr.Available)

	require.NoError(t, f.uc.RemoveLeatherStock(ctx, inventory.RemoveInput{
		UserID: testUser, ItemID: row.ID, Quantity: dec("0.25"), ReleasedTo: "Potong",
	}))
	assert.True(t, f.leatherRow(t, "CV Jaya").Quantity.Equal(dec("10")))
	assert.Equal(t, "Dikeluarkan ke: Potong. Dari supplier: CV Jaya.", f.transactions(t)[0].Notes)

	require.NoError(t, f.uc.AdjustLeatherStock(ctx, inventory.AdjustInput{
		UserID: testUser, ItemID: row.ID, NewQuantity: dec("12.5"),
	}))
	txs := f.transactions(t)
	assert.Equal(t, entity.TransactionIN, txs[0].Type)
	assert.True(t, txs[0].Quantity.Equal(dec("2.5")))
	assert.Equal(t, "Penyesuaian Stok (Supplier: CV Jaya)", txs[0].Notes)

	require.NoError(t, f.uc.DeleteLeatherStock(ctx, testUser, row.ID))
	assert.Nil(t, f.leatherRow(t, "CV Jaya"))
	txs = f.transactions(t)
	assert.True(t, txs[0].Quantity.Equal(dec("12.5")))
	assert.Equal(t, "Penghapusan Stok (Supplier: CV Jaya)", txs[0].Notes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// La suma con signo del libro coincide con el stock después de cualquier secuencia válida.
func TestLibroCuadraConStock(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.addShoe(t, 42, 20, entity.WarehouseWIP)
	wip := f.shoeRow(t, 42, entity.WarehouseWIP)
	require.NoError(t, f.uc.TransferShoeStock(ctx, inventory.TransferShoeInput{UserID: testUser, ItemID: wip.ID, Quantity: 8, FromWarehouse: entity.WarehouseWIP, Source: "M"}))
	nf := f.shoeRow(t, 42, entity.WarehouseNearlyFinished)
	require.NoError(t, f.uc.TransferShoeStock(ctx, inventory.TransferShoeInput{UserID: testUser, ItemID: nf.ID, Quantity: 8, FromWarehouse: entity.WarehouseNearlyFinished, Source: "M"}))
	fin := f.shoeRow(t, 42, entity.WarehouseFinishing)
	require.NoError(t, f.uc.TransferShoeStock(ctx, inventory.TransferShoeInput{UserID: testUser, ItemID: fin.ID, Quantity: 5, FromWarehouse: entity.WarehouseFinishing, Source: "M"}))
	fg := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)
	require.NoError(t, f.uc.SellShoeStock(ctx, inventory.SellShoeInput{UserID: testUser, ItemID: fg.ID, Quantity: 2}))
	require.NoError(t, f.uc.AdjustShoeStock(ctx, inventory.AdjustInput{UserID: testUser, ItemID: wip.ID, NewQuantity: dec("11")}))
	_ = f.uc.SellShoeStock(ctx, inventory.SellShoeInput{UserID: testUser, ItemID: fg.ID, Quantity: 99})

	perWarehouse := map[entity.Warehouse]decimal.Decimal{}
	for _, tx := range f.transactions(t) {
		perWarehouse[tx.Warehouse] = perWarehouse[tx.Warehouse].Add(tx.SignedQuantity())
	}
	snap, err := f.snapshots.GetSnapshot(ctx)
	require.NoError(t, err)
	for _, w := range snap.Stages {
		stock := 0
		for _, s := range snap.ShoeStock[w] {
			assert.Positive(t, s.Quantity, "no quedan filas en 0")
			stock += s.Quantity
		}
		assert.True(t, perWarehouse[w].Equal(decimal.NewFromInt(int64(stock))), "almacén %s", w)
	}
}

func TestSnapshot_TodasLasEtapasPresentes(t *testing.T) {
	f := newFixture(t, false)
	snap, err := f.snapshots.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.Warehouse{entity.WarehouseWIP, entity.WarehouseNearlyFinished, entity.WarehouseFinishedGoods}, snap.Stages)
	resp := inventory.ToAppDataResponse(snap)
	assert.Contains(t, resp.Inventory, "wip")
	assert.Contains(t, resp.Inventory, "leather")
	assert.NotContains(t, resp.Inventory, "finishing")
	require.Len(t, resp.ShoeMasters, 1)
	assert.Equal(t, []int{40, 41, 42, 43, 44}, resp.ShoeMasters[0].Sizes)
}

func TestListTransactions_Filtros(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	day1 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.uc.AddShoeStock(ctx, inventory.AddShoeInput{UserID: testUser, ShoeType: "RunPro", Size: 42, Quantity: 1, Warehouse: entity.WarehouseWIP, Source: "Pabrik", Date: &day1}))
	require.NoError(t, f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("3"), Supplier: "CV Jaya", Date: &day2}))

	all, err := f.snapshots.ListTransactions(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, day2, all[0].Date, "orden por fecha descendente")

	onlyLeather, err := f.snapshots.ListTransactions(ctx, entity.TransactionFilter{Warehouse: entity.WarehouseLeather})
	require.NoError(t, err)
	assert.Len(t, onlyLeather, 1)

	byText, err := f.snapshots.ListTransactions(ctx, entity.TransactionFilter{Query: "runpro"})
	require.NoError(t, err)
	assert.Len(t, byText, 1)

	from := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	recent, err := f.snapshots.ListTransactions(ctx, entity.TransactionFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.LeatherRef{Name: "Nappa"}, recent[0].Item)
}

// Ventas concurrentes sobre la misma fila: nunca se vende más de lo disponible.
func TestSell_ConcurrenteNoSobrevende(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, 10, entity.WarehouseFinishedGoods)
	row := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)

	const workers, perSale = 8, 3
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.uc.SellShoeStock(context.Background(), inventory.SellShoeInput{
				UserID: testUser, ItemID: row.ID, Quantity: perSale,
			})
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				return
			}
			mu.Lock()
			successes++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, successes)
	left := f.shoeRow(t, 42, entity.WarehouseFinishedGoods)
	require.NotNil(t, left)
	assert.Equal(t, 10-successes*perSale, left.Quantity)
	assert.Len(t, f.transactions(t), 1+successes, "un OUT por venta confirmada")
}

// Retiros concurrentes de cuero: el lote nunca queda negativo.
func TestRemoveLeather_ConcurrenteNoQuedaNegativo(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("5.5"), Supplier: "CV Jaya",
	}))
	row := f.leatherRow(t, "CV Jaya")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		removed = decimal.Zero
		ok      int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.uc.RemoveLeatherStock(ctx, inventory.RemoveInput{
				UserID: testUser, ItemID: row.ID, Quantity: dec("1.25"), ReleasedTo: "Potong",
			})
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				return
			}
			mu.Lock()
			removed = removed.Add(dec("1.25"))
			ok++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, ok)
	assert.True(t, removed.LessThanOrEqual(dec("5.5")))
	left := f.leatherRow(t, "CV Jaya")
	require.NotNil(t, left)
	assert.True(t, left.Quantity.Equal(dec("0.5")), "queda %s", left.Quantity)
	assert.Len(t, f.transactions(t), 1+ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites de almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestAddShoe_SumaQueExcedeElLimite(t *testing.T) {
	f := newFixture(t, true)
	f.addShoe(t, 42, domaininv.MaxShoeQuantity, entity.WarehouseWIP)

	err := f.uc.AddShoeStock(context.Background(), inventory.AddShoeInput{
		UserID: testUser, ShoeType: "RunPro", Size: 42, Quantity: 1, Warehouse: entity.WarehouseWIP, Source: "Pabrik",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domaininv.MaxShoeQuantity, f.shoeRow(t, 42, entity.WarehouseWIP).Quantity)
	assert.Len(t, f.transactions(t), 1, "la entrada rechazada no deja transacción")
}

func TestAddLeather_SumaQueExcedeElLimite(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: domaininv.MaxLeatherQuantity, Supplier: "CV Jaya",
	}))

	err := f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("0.01"), Supplier: "CV Jaya",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, f.leatherRow(t, "CV Jaya").Quantity.Equal(domaininv.MaxLeatherQuantity))

	err = f.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
		UserID: testUser, LeatherMasterID: f.nappaID, Quantity: dec("1e15"), Supplier: "CV Baru",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, f.leatherRow(t, "CV Baru"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Logging
// ──────────────────────────────────────────────────────────────────────────────

func TestStockUseCase_RegistraOperacionEnLog(t *testing.T) {
	f := newFixture(t, true)
	var buf bytes.Buffer
	uc := inventory.NewStockUseCase(f.store, domaininv.NewFlow(true), logger.NewWriter(&buf, "info"))
	ctx := context.Background()

	require.NoError(t, uc.AddShoeStock(ctx, inventory.AddShoeInput{
		UserID: testUser, ShoeType: "RunPro", Size: 41, Quantity: 2, Warehouse: entity.WarehouseFinishedGoods, Source: "Pabrik",
	}))
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"op":"add_shoe"`)

	buf.Reset()
	row := f.shoeRow(t, 41, entity.WarehouseFinishedGoods)
	err := uc.SellShoeStock(ctx, inventory.SellShoeInput{UserID: testUser, ItemID: row.ID, Quantity: 9})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"op":"sell_shoe"`)
	assert.Contains(t, buf.String(), `"user_id":"`+testUser+`"`)
}
