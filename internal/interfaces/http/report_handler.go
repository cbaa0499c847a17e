package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descargas de informes.
type ReportHandler struct {
	uc   *report.ReportUseCase
	errs errorMapper
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase, errs errorMapper) *ReportHandler {
	return &ReportHandler{uc: uc, errs: errs}
}

// ExportTransactions godoc
// @Summary      Exportar historial a Excel (mismos filtros que /api/transactions)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /api/transactions/export [get]
func (h *ReportHandler) ExportTransactions(c *fiber.Ctx) error {
	filter, err := transactionFilter(c)
	if err != nil {
		return h.errs.respond(c, err)
	}
	data, err := h.uc.TransactionsXLSX(c.UserContext(), filter)
	if err != nil {
		return h.errs.respond(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, attachment("transaksi", "xlsx"))
	return c.Send(data)
}

// StockPDF godoc
// @Summary      Informe PDF del stock actual
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockPDF(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment("laporan-stok", "pdf"))
	return c.Send(data)
}

func attachment(name, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.%s"`, name, time.Now().Format("20060102"), ext)
}
