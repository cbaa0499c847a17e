package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

// StockUseCase motor de mutaciones de stock. Cada operación corre en una sola transacción
// (TxRunner): el cambio en el stock y su registro en el libro se confirman juntos o no se confirman.
// Es la única vía de escritura sobre shoe_stock, leather_stock y transactions.
type StockUseCase struct {
	txRunner repository.TxRunner
	flow     domaininv.Flow
	log      *logger.Logger
	now      func() time.Time
}

// NewStockUseCase construye el motor.
func NewStockUseCase(txRunner repository.TxRunner, flow domaininv.Flow, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{txRunner: txRunner, flow: flow, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *StockUseCase) WithClock(now func() time.Time) *StockUseCase {
	uc.now = now
	return uc
}

// Flow devuelve la tabla de flujo activa.
func (uc *StockUseCase) Flow() domaininv.Flow { return uc.flow }

// AddShoeInput entrada de AddShoeStock.
type AddShoeInput struct {
	UserID    string
	ShoeType  string
	Size      int
	Quantity  int
	Warehouse entity.Warehouse
	Source    string
	Date      *time.Time
}

// SellShoeInput entrada de SellShoeStock. Solo filas de FINISHED_GOODS.
type SellShoeInput struct {
	UserID       string
	ItemID       string
	Quantity     int
	CustomerName string
	Date         *time.Time
}

// RemoveInput entrada de salidas no comerciales (calzado o cuero).
type RemoveInput struct {
	UserID     string
	ItemID     string
	Quantity   decimal.Decimal
	ReleasedTo string
	Date       *time.Time
}

// TransferShoeInput entrada de TransferShoeStock.
type TransferShoeInput struct {
	UserID        string
	ItemID        string
	Quantity      int
	FromWarehouse entity.Warehouse
	Source        string
	Destination   string
	Date          *time.Time
}

// AdjustInput entrada de ajustes administrativos (calzado o cuero).
type AdjustInput struct {
	UserID      string
	ItemID      string
	NewQuantity decimal.Decimal
}

// AddShoeStock suma unidades a (tipo, talla, almacén) y registra un IN con el origen.
func (uc *StockUseCase) AddShoeStock(ctx context.Context, in AddShoeInput) error {
	shoeType := strings.TrimSpace(in.ShoeType)
	source := strings.TrimSpace(in.Source)
	if shoeType == "" {
		return domain.Invalid("shoeType", "tipe sepatu wajib diisi")
	}
	if err := domaininv.ValidateShoeQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	if !uc.flow.HasStage(in.Warehouse) {
		return domain.Invalid("warehouse", fmt.Sprintf("gudang %q tidak valid", in.Warehouse))
	}
	if source == "" {
		return domain.Invalid("source", "sumber wajib diisi")
	}
	date := uc.dateOrNow(in.Date)

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		master, err := r.ShoeMasters.GetByShoeType(ctx, shoeType)
		if err != nil {
			return err
		}
		if master == nil {
			return domain.ErrMasterNotFound
		}
		if !master.HasSize(in.Size) {
			return domain.Invalid("size", fmt.Sprintf("ukuran %d tidak terdaftar untuk %s", in.Size, master.ShoeType))
		}
		if _, err := r.ShoeStock.Increment(ctx, master.ID, in.Size, in.Warehouse, in.Quantity); err != nil {
			return err
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      entity.TransactionIN,
			Item:      entity.ShoeRef{ShoeType: master.ShoeType, Size: in.Size},
			Quantity:  decimal.NewFromInt(int64(in.Quantity)),
			Warehouse: in.Warehouse,
			Source:    source,
			CreatedBy: in.UserID,
		})
	})
	uc.logResult("add_shoe", in.UserID, err).
		Str("shoe_type", shoeType).Int("size", in.Size).Int("quantity", in.Quantity).
		Str("warehouse", string(in.Warehouse)).Msg("stok sepatu masuk")
	return err
}

// SellShoeStock descuenta una venta de FINISHED_GOODS.
func (uc *StockUseCase) SellShoeStock(ctx context.Context, in SellShoeInput) error {
	if in.ItemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	if err := domaininv.ValidateShoeQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	date := uc.dateOrNow(in.Date)
	note := domaininv.SaleNote(strings.TrimSpace(in.CustomerName))

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.ShoeStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil || stock.Warehouse != entity.WarehouseFinishedGoods {
			return domain.ErrNotFound
		}
		return uc.decrementShoe(ctx, r, stock, in.Quantity, "", note, in.UserID, date)
	})
	uc.logResult("sell_shoe", in.UserID, err).
		Str("item_id", in.ItemID).Int("quantity", in.Quantity).Msg("penjualan sepatu")
	return err
}

// RemoveShoeStock salida no comercial desde el almacén actual de la fila.
func (uc *StockUseCase) RemoveShoeStock(ctx context.Context, in RemoveInput) error {
	qty, err := domaininv.ShoeUnits("quantity", in.Quantity, false)
	if err != nil {
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

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.ShoeStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		return uc.decrementShoe(ctx, r, stock, qty, "", domaininv.ReleaseNote(releasedTo), in.UserID, date)
	})
	uc.logResult("remove_shoe", in.UserID, err).
		Str("item_id", in.ItemID).Int("quantity", qty).Msg("pengeluaran sepatu")
	return err
}

// TransferShoeStock avanza unidades una etapa en el flujo de producción: OUT en origen e IN en
// destino, ambos con la misma cantidad y (tipo, talla), en la misma transacción.
func (uc *StockUseCase) TransferShoeStock(ctx context.Context, in TransferShoeInput) error {
	if in.ItemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	if err := domaininv.ValidateShoeQuantity("quantity", in.Quantity, false); err != nil {
		return err
	}
	to, err := uc.flow.Next(in.FromWarehouse)
	if err != nil {
		return err
	}
	source := strings.TrimSpace(in.Source)
	if source == "" {
		return domain.Invalid("source", "sumber wajib diisi")
	}
	destination := strings.TrimSpace(in.Destination)
	date := uc.dateOrNow(in.Date)

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.ShoeStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil || stock.Warehouse != in.FromWarehouse {
			return domain.ErrNotFound
		}
		outNote := domaininv.TransferOutNote(to, destination)
		if err := uc.decrementShoe(ctx, r, stock, in.Quantity, "", outNote, in.UserID, date); err != nil {
			return err
		}
		if _, err := r.ShoeStock.Increment(ctx, stock.ShoeMasterID, stock.Size, to, in.Quantity); err != nil {
			return err
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      entity.TransactionIN,
			Item:      entity.ShoeRef{ShoeType: stock.ShoeType, Size: stock.Size},
			Quantity:  decimal.NewFromInt(int64(in.Quantity)),
			Warehouse: to,
			Source:    source,
			Notes:     domaininv.TransferInNote(in.FromWarehouse, destination),
			CreatedBy: in.UserID,
		})
	})
	uc.logResult("transfer_shoe", in.UserID, err).
		Str("item_id", in.ItemID).Int("quantity", in.Quantity).
		Str("from", string(in.FromWarehouse)).Str("to", string(to)).Msg("transfer sepatu")
	return err
}

// AdjustShoeStock corrige la cantidad a NewQuantity y registra la diferencia.
// Sin diferencia no hay cambio ni transacción.
func (uc *StockUseCase) AdjustShoeStock(ctx context.Context, in AdjustInput) error {
	newQty, err := domaininv.ShoeUnits("newQuantity", in.NewQuantity, true)
	if err != nil {
		return err
	}
	if in.ItemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	date := uc.now()

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.ShoeStock.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		delta := newQty - stock.Quantity
		if delta == 0 {
			return nil
		}
		if newQty == 0 {
			err = r.ShoeStock.Delete(ctx, stock.ID)
		} else {
			err = r.ShoeStock.SetQuantity(ctx, stock.ID, newQty)
		}
		if err != nil {
			return err
		}
		typ := entity.TransactionIN
		if delta < 0 {
			typ = entity.TransactionOUT
			delta = -delta
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      typ,
			Item:      entity.ShoeRef{ShoeType: stock.ShoeType, Size: stock.Size},
			Quantity:  decimal.NewFromInt(int64(delta)),
			Warehouse: stock.Warehouse,
			Notes:     domaininv.NoteAdjustment,
			CreatedBy: in.UserID,
		})
	})
	uc.logResult("adjust_shoe", in.UserID, err).
		Str("item_id", in.ItemID).Int("new_quantity", newQty).Msg("penyesuaian stok sepatu")
	return err
}

// DeleteShoeStock elimina la fila completa y registra un OUT por la cantidad previa.
func (uc *StockUseCase) DeleteShoeStock(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return domain.Invalid("itemId", "item wajib dipilih")
	}
	date := uc.now()

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock, err := r.ShoeStock.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if err := r.ShoeStock.Delete(ctx, stock.ID); err != nil {
			return err
		}
		return r.Transactions.Create(ctx, &entity.Transaction{
			Date:      date,
			Type:      entity.TransactionOUT,
			Item:      entity.ShoeRef{ShoeType: stock.ShoeType, Size: stock.Size},
			Quantity:  decimal.NewFromInt(int64(stock.Quantity)),
			Warehouse: stock.Warehouse,
			Notes:     domaininv.NoteDeletion,
			CreatedBy: userID,
		})
	})
	uc.logResult("delete_shoe", userID, err).Str("item_id", itemID).Msg("penghapusan stok sepatu")
	return err
}

// decrementShoe resta qty de una fila bloqueada (borrándola si llega a 0) y registra el OUT.
func (uc *StockUseCase) decrementShoe(
	ctx context.Context,
	r repository.TxRepos,
	stock *entity.ShoeStock,
	qty int,
	source, notes, userID string,
	date time.Time,
) error {
	if qty > stock.Quantity {
		return &domain.InsufficientStockError{
			Available: strconv.Itoa(stock.Quantity),
			Requested: strconv.Itoa(qty),
		}
	}
	remaining := stock.Quantity - qty
	var err error
	if remaining == 0 {
		err = r.ShoeStock.Delete(ctx, stock.ID)
	} else {
		err = r.ShoeStock.SetQuantity(ctx, stock.ID, remaining)
	}
	if err != nil {
		return err
	}
	return r.Transactions.Create(ctx, &entity.Transaction{
		Date:      date,
		Type:      entity.TransactionOUT,
		Item:      entity.ShoeRef{ShoeType: stock.ShoeType, Size: stock.Size},
		Quantity:  decimal.NewFromInt(int64(qty)),
		Warehouse: stock.Warehouse,
		Source:    source,
		Notes:     notes,
		CreatedBy: userID,
	})
}

func (uc *StockUseCase) dateOrNow(d *time.Time) time.Time {
	if d != nil && !d.IsZero() {
		return *d
	}
	return uc.now()
}
