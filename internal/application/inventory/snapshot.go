package inventory

import (
	"context"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

// Snapshot estado completo para visualización: stock agrupado por almacén, libro y maestros.
type Snapshot struct {
	Stages         []entity.Warehouse
	ShoeStock      map[entity.Warehouse][]*entity.ShoeStock
	LeatherStock   []*entity.LeatherStock
	Transactions   []*entity.Transaction
	ShoeMasters    []*entity.ShoeMaster
	LeatherMasters []*entity.LeatherMaster
	MaklunMasters  []*entity.MaklunMaster
}

// SnapshotUseCase accesos de solo lectura.
type SnapshotUseCase struct {
	txRunner repository.TxRunner
	flow     domaininv.Flow
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(txRunner repository.TxRunner, flow domaininv.Flow) *SnapshotUseCase {
	return &SnapshotUseCase{txRunner: txRunner, flow: flow}
}

// GetSnapshot lee todo dentro de una misma transacción para obtener una vista consistente.
func (uc *SnapshotUseCase) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	s := &Snapshot{
		Stages:    uc.flow.Stages(),
		ShoeStock: make(map[entity.Warehouse][]*entity.ShoeStock),
	}
	for _, w := range s.Stages {
		s.ShoeStock[w] = []*entity.ShoeStock{}
	}
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		shoes, err := r.ShoeStock.List(ctx)
		if err != nil {
			return err
		}
		for _, item := range shoes {
			s.ShoeStock[item.Warehouse] = append(s.ShoeStock[item.Warehouse], item)
		}
		if s.LeatherStock, err = r.LeatherStock.List(ctx); err != nil {
			return err
		}
		if s.Transactions, err = r.Transactions.List(ctx, entity.TransactionFilter{}); err != nil {
			return err
		}
		if s.ShoeMasters, err = r.ShoeMasters.List(ctx); err != nil {
			return err
		}
		if s.LeatherMasters, err = r.LeatherMasters.List(ctx); err != nil {
			return err
		}
		s.MaklunMasters, err = r.MaklunMasters.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListTransactions historial filtrado (fecha desc).
func (uc *SnapshotUseCase) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		var err error
		list, err = r.Transactions.List(ctx, filter)
		return err
	})
	return list, err
}

// ToAppDataResponse convierte el snapshot al formato de GET /api/data/all.
func ToAppDataResponse(s *Snapshot) dto.AppDataResponse {
	inv := make(map[string]any, len(s.Stages)+1)
	for _, w := range s.Stages {
		items := make([]dto.InventoryItemResponse, 0, len(s.ShoeStock[w]))
		for _, it := range s.ShoeStock[w] {
			items = append(items, dto.InventoryItemResponse{
				ID: it.ID, ShoeType: it.ShoeType, Size: it.Size, Quantity: it.Quantity,
			})
		}
		inv[string(w)] = items
	}
	leather := make([]dto.LeatherItemResponse, 0, len(s.LeatherStock))
	for _, it := range s.LeatherStock {
		leather = append(leather, dto.LeatherItemResponse{
			ID: it.ID, LeatherMasterID: it.LeatherMasterID, Name: it.LeatherName,
			Quantity: it.Quantity, Supplier: it.Supplier,
		})
	}
	inv[string(entity.WarehouseLeather)] = leather

	out := dto.AppDataResponse{
		Inventory:      inv,
		Transactions:   ToTransactionResponses(s.Transactions),
		ShoeMasters:    make([]dto.ShoeMasterResponse, 0, len(s.ShoeMasters)),
		MaklunMasters:  make([]dto.MasterResponse, 0, len(s.MaklunMasters)),
		LeatherMasters: make([]dto.MasterResponse, 0, len(s.LeatherMasters)),
	}
	for _, m := range s.ShoeMasters {
		out.ShoeMasters = append(out.ShoeMasters, dto.ShoeMasterResponse{ID: m.ID, ShoeType: m.ShoeType, Sizes: m.Sizes})
	}
	for _, m := range s.MaklunMasters {
		out.MaklunMasters = append(out.MaklunMasters, dto.MasterResponse{ID: m.ID, Name: m.Name})
	}
	for _, m := range s.LeatherMasters {
		out.LeatherMasters = append(out.LeatherMasters, dto.MasterResponse{ID: m.ID, Name: m.Name})
	}
	return out
}

// ToTransactionResponses convierte entradas del libro; nunca devuelve nil.
func ToTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		r := dto.TransactionResponse{
			ID:        t.ID,
			Date:      t.Date,
			Type:      string(t.Type),
			Quantity:  t.Quantity,
			Warehouse: string(t.Warehouse),
			Source:    t.Source,
			Notes:     t.Notes,
			CreatedBy: t.CreatedBy,
		}
		switch item := t.Item.(type) {
		case entity.ShoeRef:
			shoeType, size := item.ShoeType, item.Size
			r.Item = dto.TransactionItemResponse{ShoeType: &shoeType, Size: &size}
		case entity.LeatherRef:
			name := item.Name
			r.Item = dto.TransactionItemResponse{Name: &name}
		}
		out = append(out, r)
	}
	return out
}
