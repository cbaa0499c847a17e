package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// ShoeStockRepository puerto del stock de calzado. Los Get devuelven (nil, nil) si no existe.
// Solo el motor de inventario escribe aquí, siempre dentro de un TxRunner.
type ShoeStockRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ShoeStock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.ShoeStock, error)
	// Increment suma qty a (shoeMasterID, size, warehouse), creando la fila si no existe.
	Increment(ctx context.Context, shoeMasterID string, size int, warehouse entity.Warehouse, qty int) (*entity.ShoeStock, error)
	SetQuantity(ctx context.Context, id string, qty int) error
	Delete(ctx context.Context, id string) error
	ExistsByShoeMaster(ctx context.Context, shoeMasterID string) (bool, error)
	List(ctx context.Context) ([]*entity.ShoeStock, error)
}

// LeatherStockRepository puerto del stock de cuero por lote.
type LeatherStockRepository interface {
	GetByID(ctx context.Context, id string) (*entity.LeatherStock, error)
	GetForUpdate(ctx context.Context, id string) (*entity.LeatherStock, error)
	Increment(ctx context.Context, leatherMasterID, supplier string, qty decimal.Decimal) (*entity.LeatherStock, error)
	SetQuantity(ctx context.Context, id string, qty decimal.Decimal) error
	Delete(ctx context.Context, id string) error
	ExistsByLeatherMaster(ctx context.Context, leatherMasterID string) (bool, error)
	List(ctx context.Context) ([]*entity.LeatherStock, error)
}
