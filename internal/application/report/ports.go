package report

import (
	"context"
	"time"

	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// StockPDFRenderer genera el informe PDF del stock actual.
type StockPDFRenderer interface {
	RenderStock(ctx context.Context, snap *inventory.Snapshot, generatedAt time.Time) ([]byte, error)
}

// TransactionExporter genera la hoja de cálculo del historial filtrado.
type TransactionExporter interface {
	ExportTransactions(ctx context.Context, list []*entity.Transaction) ([]byte, error)
}
