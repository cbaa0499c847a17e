package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

// AddLeatherInput entrada de AddLeatherStock.
type AddLeatherInput struct {
	UserID          string
	LeatherMasterID string
	Quantity        decimal.Decimal
	Supplier        string
	Date            *time.Time
}

// ReturnLeatherInput entrada de ReturnLeather.
type ReturnLeatherInput struct {
	UserID          string
	LeatherMasterID string
	Quantity        decimal.Decimal
	ReturneeName    string
	Notes           string
	Date            *time.Time
}

// AddLeatherStock suma cuero al lote (tipo, proveedor). El lote "Retur" queda reservado a devoluciones.
func (uc *StockUseCase) AddLeatherStock(ctx context.Context, in AddLeatherInput) error {
	if err := domaininv.ValidateLeatherQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		return domain.Invalid("supplier", "supplier wajib diisi")
	}
	if strings.EqualFold(supplier, entity.ReturnSupplier) {
		return domain.Invalid("supplier", "supplier \"Retur\" khusus untuk pengembalian kulit")
	}
	if in.LeatherMasterID == "" {
		return domain.Invalid("leatherMasterId", "jenis kulit wajib dipilih")
	}
	date := uc.dateOrNow(in.Date)

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return uc.incrementLeather(ctx, r, in.LeatherMasterID, supplier, in.Quantity, supplier, "", in.UserID, date)
	})
	uc.logResult("add_leather", in.UserID, err).
		Str("leather_master_id", in.LeatherMasterID).Str("supplier", supplier).
		Str("quantity", in.Quantity.String()).Msg("stok kulit masuk")
	return err
}

// ReturnLeather devuelve cuero al lote sintético "Retur", sin importar el lote original.
func (uc *StockUseCase) ReturnLeather(ctx context.Context, in ReturnLeatherInput) error {
	if err := domaininv.ValidateLeatherQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	returnee := strings.TrimSpace(in.ReturneeName)
	notes := strings.TrimSpace(in.Notes)
	if returnee == "" {
		return domain.Invalid("returneeName", "nama pengembali wajib diisi")
	}
	if notes == "" {
		return domain.Invalid("notes", "keterangan wajib diisi")
	}
	if in.LeatherMasterID == "" {
		return domain.Invalid("leatherMasterId", "jenis kulit wajib dipilih")
	}
	date := uc.dateOrNow(in.Date)

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return uc.incrementLeather(ctx, r, in.LeatherMasterID, entity.ReturnSupplier, in.Quantity,
			entity.ReturnSupplier, domaininv.ReturnNote(notes, returnee), in.UserID, date)
	})
	uc.logResult("return_leather", in.UserID, err).
		Str("leather_master_id", in.LeatherMasterID).Str("quantity", in.Quantity.String()).
		Msg("retur kulit")
	return err
}

// RemoveLeatherStock descuento plano del lote (el cuero no tiene etapas de flujo).
func (uc *StockUseCase) RemoveLeatherStock(ctx context.Context, in RemoveInput) error {
	if err := domaininv.ValidateLeatherQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	releasedTo := strings.TrimSpace(in.ReleasedTo)
	if in.ItemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	if releasedTo == "" {
		return domain.Invalid("releasedTo", "tujuan pengeluaran wajib diisi")
	}
	date := uc.dateOrNow(in.Date)

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.LeatherStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if in.Quantity.GreaterThan(stock.Quantity) {
			return &domain.InsufficientStockError{
				Available: stock.Quantity.StringFixed(domaininv.LeatherScale),
				Requested: in.Quantity.StringFixed(domaininv.LeatherScale),
			}
		}
		remaining := stock.Quantity.Sub(in.Quantity)
		if remaining.IsZero() {
			err = r.LeatherStock.Delete(ctx, stock.ID)
		} else {
			err = r.LeatherStock.SetQuantity(ctx, stock.ID, remaining)
		}
		if err != nil {
			return err
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      entity.TransactionOUT,
			Item:      entity.LeatherRef{Name: stock.LeatherName},
			Quantity:  in.Quantity,
			Warehouse: entity.WarehouseLeather,
			Notes:     domaininv.LeatherReleaseNote(releasedTo, stock.Supplier),
			CreatedBy: in.UserID,
		})
	})
	uc.logResult("remove_leather", in.UserID, err).
		Str("item_id", in.ItemID).Str("quantity", in.Quantity.String()).Msg("pengeluaran kulit")
	return err
}

// AdjustLeatherStock corrige la cantidad del lote; la nota incluye el proveedor.
func (uc *StockUseCase) AdjustLeatherStock(ctx context.Context, in AdjustInput) error {
	if err := domaininv.ValidateLeatherQuantity("newQuantity", in.NewQuantity, true); err != nil {
		return err
	}
	if in.ItemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	date := uc.now()

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.LeatherStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		delta := in.NewQuantity.Sub(stock.Quantity)
		if delta.IsZero() {
			return nil
		}
		if in.NewQuantity.IsZero() {
			err = r.LeatherStock.Delete(ctx, stock.ID)
		} else {
			err = r.LeatherStock.SetQuantity(ctx, stock.ID, in.NewQuantity)
		}
		if err != nil {
			return err
		}
		typ := entity.TransactionIN
		if delta.IsNegative() {
			typ = entity.TransactionOUT
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      typ,
			Item:      entity.LeatherRef{Name: stock.LeatherName},
			Quantity:  delta.Abs(),
			Warehouse: entity.WarehouseLeather,
			Notes:     domaininv.WithSupplier(domaininv.NoteAdjustment, stock.Supplier),
			CreatedBy: in.UserID,
		})
	})
	uc.logResult("adjust_leather", in.UserID, err).
		Str("item_id", in.ItemID).Str("new_quantity", in.NewQuantity.String()).Msg("penyesuaian stok kulit")
	return err
}

// DeleteLeatherStock elimina el lote y registra un OUT por la cantidad previa.
func (uc *StockUseCase) DeleteLeatherStock(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	date := uc.now()

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.LeatherStock.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if err := r.LeatherStock.Delete(ctx, stock.ID); err != nil {
			return err
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      entity.TransactionOUT,
			Item:      entity.LeatherRef{Name: stock.LeatherName},
			Quantity:  stock.Quantity,
			Warehouse: entity.WarehouseLeather,
			Notes:     domaininv.WithSupplier(domaininv.NoteDeletion, stock.Supplier),
			CreatedBy: userID,
		})
	})
	uc.logResult("delete_leather", userID, err).Str("item_id", itemID).Msg("penghapusan stok kulit")
	return err
}

// incrementLeather upsert del lote + transacción IN.
func (uc *StockUseCase) incrementLeather(
	ctx context.Context,
	r repository.TxRepos,
	leatherMasterID, supplier string,
	qty decimal.Decimal,
	source, notes, userID string,
	date time.Time,
) error {
	master, err := r.LeatherMasters.GetByID(ctx, leatherMasterID)
	if err != nil {
		return err
	}
	if master == nil {
		return domain.ErrMasterNotFound
	}
	if _, err := r.LeatherStock.Increment(ctx, master.ID, supplier, qty); err != nil {
		return err
	}
	return r.Transactions.Create(ctx, &entity.Transaction{
		Date:      date,
		Type:      entity.TransactionIN,
		Item:      entity.LeatherRef{Name: master.Name},
		Quantity:  qty,
		Warehouse: entity.WarehouseLeather,
		Source:    source,
		Notes:     notes,
		CreatedBy: userID,
	})
}

// logResult evento info si la operación fue exitosa, warn con el error si no.
func (uc *StockUseCase) logResult(op, userID string, err error) *zerolog.Event {
	var ev *zerolog.Event
	if err != nil {
		ev = uc.log.Warn().Err(err)
	} else {
		ev = uc.log.Info()
	}
	return ev.Str("op", op).Str("user_id", userID)
}
