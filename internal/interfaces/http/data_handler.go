package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

const defaultTransactionLimit = 100

// DataHandler lecturas: snapshot completo e historial filtrado.
type DataHandler struct {
	uc   *inventory.SnapshotUseCase
	errs errorMapper
}

// NewDataHandler construye el handler.
func NewDataHandler(uc *inventory.SnapshotUseCase, errs errorMapper) *DataHandler {
	return &DataHandler{uc: uc, errs: errs}
}

// All godoc
// @Summary      Snapshot completo: stock por almacén, cuero, historial y maestros
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AppDataResponse
// @Router       /api/data/all [get]
func (h *DataHandler) All(c *fiber.Ctx) error {
	snap, err := h.uc.GetSnapshot(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(inventory.ToAppDataResponse(snap))
}

// Transactions godoc
// @Summary      Historial de transacciones filtrado
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Param        from       query  string  false  "fecha inicial (YYYY-MM-DD o RFC3339)"
// @Param        to         query  string  false  "fecha final, inclusive"
// @Param        warehouse  query  string  false  "almacén"
// @Param        type       query  string  false  "IN | OUT"
// @Param        q          query  string  false  "texto libre"
// @Param        limit      query  int     false  "máximo de filas (100 por defecto)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *DataHandler) Transactions(c *fiber.Ctx) error {
	filter, err := transactionFilter(c)
	if err != nil {
		return h.errs.respond(c, err)
	}
	list, err := h.uc.ListTransactions(c.UserContext(), filter)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.TransactionListResponse{
		Items: inventory.ToTransactionResponses(list),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	})
}

// transactionFilter lee y valida los query params comunes a la lista y a la exportación.
func transactionFilter(c *fiber.Ctx) (entity.TransactionFilter, error) {
	var q dto.TransactionQuery
	if err := parseQuery(c, &q); err != nil {
		return entity.TransactionFilter{}, err
	}
	from, err := parseDateField("from", q.From)
	if err != nil {
		return entity.TransactionFilter{}, err
	}
	to, err := parseDateField("to", q.To)
	if err != nil {
		return entity.TransactionFilter{}, err
	}
	// Una fecha sin hora en "to" incluye el día completo.
	if to != nil && isDateOnly(q.To) {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return entity.TransactionFilter{}, domain.Invalid("from", "tanggal awal melewati tanggal akhir")
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultTransactionLimit
	}
	return entity.TransactionFilter{
		From:      from,
		To:        to,
		Warehouse: entity.Warehouse(q.Warehouse),
		Type:      entity.TransactionType(q.Type),
		Query:     strings.TrimSpace(q.Q),
		Limit:     limit,
		Offset:    q.Offset,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	return parseDateField("date", s)
}

func parseDateField(field, s string) (*time.Time, error) {
	t, err := dto.ParseDate(s)
	if err != nil {
		return nil, domain.Invalid(field, "format tanggal tidak valid (YYYY-MM-DD)")
	}
	return t, nil
}

func isDateOnly(s string) bool {
	return len(strings.TrimSpace(s)) == len("2006-01-02")
}
