package report

import (
	"context"
	"time"

	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// ReportUseCase documentos descargables: PDF de stock y XLSX de transacciones.
type ReportUseCase struct {
	snapshots *inventory.SnapshotUseCase
	pdf       StockPDFRenderer
	xlsx      TransactionExporter
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(snapshots *inventory.SnapshotUseCase, pdf StockPDFRenderer, xlsx TransactionExporter) *ReportUseCase {
	return &ReportUseCase{snapshots: snapshots, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// StockPDF informe del stock por almacén y del cuero por lote.
func (uc *ReportUseCase) StockPDF(ctx context.Context) ([]byte, error) {
	snap, err := uc.snapshots.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderStock(ctx, snap, uc.now())
}

// TransactionsXLSX exporta el historial con los mismos filtros que GET /api/transactions.
func (uc *ReportUseCase) TransactionsXLSX(ctx context.Context, filter entity.TransactionFilter) ([]byte, error) {
	list, err := uc.snapshots.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.ExportTransactions(ctx, list)
}
