package repository

import (
	"context"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// TransactionRepository libro de transacciones, solo anexar.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	// List ordena por fecha descendente. Limit 0 = sin límite.
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)
	// ReferencesName true si name es el source de alguna transacción o aparece dentro de notes.
	ReferencesName(ctx context.Context, name string) (bool, error)
}
