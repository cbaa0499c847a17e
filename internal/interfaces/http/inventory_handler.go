package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
)

// InventoryHandler mutaciones de stock de calzado y cuero.
type InventoryHandler struct {
	uc   *inventory.StockUseCase
	errs errorMapper
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase, errs errorMapper) *InventoryHandler {
	return &InventoryHandler{uc: uc, errs: errs}
}

// ShoeOperation godoc
// @Summary      Operación sobre stock de calzado (add | sell | remove | transfer)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ShoeOperationRequest  true  "operación"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/shoe [post]
func (h *InventoryHandler) ShoeOperation(c *fiber.Ctx) error {
	var in dto.ShoeOperationRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return h.errs.respond(c, err)
	}
	ctx := c.UserContext()
	userID := GetUserID(c)

	var msg string
	switch in.Operation {
	case dto.OperationAdd:
		qty, err := domaininv.ShoeUnits("quantity", in.Quantity, false)
		if err != nil {
			return h.errs.respond(c, err)
		}
		err = h.uc.AddShoeStock(ctx, inventory.AddShoeInput{
			UserID:    userID,
			ShoeType:  in.Shoe.ShoeType,
			Size:      in.Shoe.Size,
			Quantity:  qty,
			Warehouse: entity.Warehouse(in.Warehouse),
			Source:    in.Source,
			Date:      date,
		})
		if err != nil {
			return h.errs.respond(c, err)
		}
		msg = "stok sepatu berhasil ditambahkan"
	case dto.OperationSell:
		qty, err := domaininv.ShoeUnits("quantity", in.Quantity, false)
		if err != nil {
			return h.errs.respond(c, err)
		}
		err = h.uc.SellShoeStock(ctx, inventory.SellShoeInput{
			UserID:       userID,
			ItemID:       in.ItemID,
			Quantity:     qty,
			CustomerName: in.CustomerName,
			Date:         date,
		})
		if err != nil {
			return h.errs.respond(c, err)
		}
		msg = "penjualan berhasil dicatat"
	case dto.OperationRemove:
		err = h.uc.RemoveShoeStock(ctx, inventory.RemoveInput{
			UserID:     userID,
			ItemID:     in.ItemID,
			Quantity:   in.Quantity,
			ReleasedTo: in.ReleasedTo,
			Date:       date,
		})
		if err != nil {
			return h.errs.respond(c, err)
		}
		msg = "stok sepatu berhasil dikeluarkan"
	case dto.OperationTransfer:
		qty, err := domaininv.ShoeUnits("quantity", in.Quantity, false)
		if err != nil {
			return h.errs.respond(c, err)
		}
		err = h.uc.TransferShoeStock(ctx, inventory.TransferShoeInput{
			UserID:        userID,
			ItemID:        in.ItemID,
			Quantity:      qty,
			FromWarehouse: entity.Warehouse(in.FromWarehouse),
			Source:        in.Source,
			Destination:   in.Destination,
			Date:          date,
		})
		if err != nil {
			return h.errs.respond(c, err)
		}
		msg = "transfer berhasil"
	default:
		return h.errs.respond(c, domain.Invalid("operation", "operasi tidak dikenal"))
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// AdjustShoe godoc
// @Summary      Ajustar cantidad de una fila de calzado
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID de la fila"
// @Param        body  body  dto.UpdateQuantityRequest  true  "nueva cantidad"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/inventory/shoe/{id} [put]
func (h *InventoryHandler) AdjustShoe(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	err := h.uc.AdjustShoeStock(c.UserContext(), inventory.AdjustInput{
		UserID:      GetUserID(c),
		ItemID:      c.Params("id"),
		NewQuantity: *in.NewQuantity,
	})
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stok sepatu berhasil diperbarui"})
}

// DeleteShoe godoc
// @Summary      Eliminar una fila de calzado
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la fila"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/inventory/shoe/{id} [delete]
func (h *InventoryHandler) DeleteShoe(c *fiber.Ctx) error {
	if err := h.uc.DeleteShoeStock(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stok sepatu berhasil dihapus"})
}

// LeatherOperation godoc
// @Summary      Operación sobre stock de cuero (add | return | remove)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LeatherOperationRequest  true  "operación"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/leather [post]
func (h *InventoryHandler) LeatherOperation(c *fiber.Ctx) error {
	var in dto.LeatherOperationRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return h.errs.respond(c, err)
	}
	ctx := c.UserContext()
	userID := GetUserID(c)

	var msg string
	switch in.Operation {
	case dto.OperationAdd:
		err = h.uc.AddLeatherStock(ctx, inventory.AddLeatherInput{
			UserID:          userID,
			LeatherMasterID: in.LeatherMasterID,
			Quantity:        in.Quantity,
			Supplier:        in.Supplier,
			Date:            date,
		})
		msg = "stok kulit berhasil ditambahkan"
	case dto.OperationReturn:
		err = h.uc.ReturnLeather(ctx, inventory.ReturnLeatherInput{
			UserID:          userID,
			LeatherMasterID: in.LeatherMasterID,
			Quantity:        in.Quantity,
			ReturneeName:    in.ReturneeName,
			Notes:           in.Notes,
			Date:            date,
		})
		msg = "retur kulit berhasil dicatat"
	case dto.OperationRemove:
		err = h.uc.RemoveLeatherStock(ctx, inventory.RemoveInput{
			UserID:     userID,
			ItemID:     in.ItemID,
			Quantity:   in.Quantity,
			ReleasedTo: in.ReleasedTo,
			Date:       date,
		})
		msg = "stok kulit berhasil dikeluarkan"
	default:
		err = domain.Invalid("operation", "operasi tidak dikenal")
	}
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// AdjustLeather godoc
// @Summary      Ajustar cantidad de un lote de cuero
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del lote"
// @Param        body  body  dto.UpdateQuantityRequest  true  "nueva cantidad"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/inventory/leather/{id} [put]
func (h *InventoryHandler) AdjustLeather(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	err := h.uc.AdjustLeatherStock(c.UserContext(), inventory.AdjustInput{
		UserID:      GetUserID(c),
		ItemID:      c.Params("id"),
		NewQuantity: *in.NewQuantity,
	})
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stok kulit berhasil diperbarui"})
}

// DeleteLeather godoc
// @Summary      Eliminar un lote de cuero
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/inventory/leather/{id} [delete]
func (h *InventoryHandler) DeleteLeather(c *fiber.Ctx) error {
	if err := h.uc.DeleteLeatherStock(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stok kulit berhasil dihapus"})
}
