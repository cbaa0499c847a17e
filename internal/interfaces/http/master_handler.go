package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/application/usecase"
)

// MasterHandler CRUD de maestros de calzado, cuero y maklun.
type MasterHandler struct {
	uc   *usecase.CatalogUseCase
	errs errorMapper
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.CatalogUseCase, errs errorMapper) *MasterHandler {
	return &MasterHandler{uc: uc, errs: errs}
}

// ── calzado ───────────────────────────────────────────────────────────────────

// CreateShoe godoc
// @Summary      Crear tipo de calzado
// @Tags         masters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ShoeMasterRequest  true  "shoeType, sizesStr"
// @Success      201   {object}  dto.ShoeMasterResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shoe-masters [post]
func (h *MasterHandler) CreateShoe(c *fiber.Ctx) error {
	var in dto.ShoeMasterRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.CreateShoeMaster(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateShoe godoc
// @Summary      Actualizar tipo de calzado
// @Tags         masters
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.ShoeMasterRequest  true  "shoeType, sizesStr"
// @Success      200   {object}  dto.ShoeMasterResponse
// @Router       /api/shoe-masters/{id} [put]
func (h *MasterHandler) UpdateShoe(c *fiber.Ctx) error {
	var in dto.ShoeMasterRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.UpdateShoeMaster(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// DeleteShoe godoc
// @Summary      Eliminar tipo de calzado (409 si tiene stock)
// @Tags         masters
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/shoe-masters/{id} [delete]
func (h *MasterHandler) DeleteShoe(c *fiber.Ctx) error {
	if err := h.uc.DeleteShoeMaster(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListShoe godoc
// @Summary      Listar tipos de calzado
// @Tags         masters
// @Security     BearerAuth
// @Success      200  {array}  dto.ShoeMasterResponse
// @Router       /api/shoe-masters [get]
func (h *MasterHandler) ListShoe(c *fiber.Ctx) error {
	out, err := h.uc.ListShoeMasters(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// ── cuero ─────────────────────────────────────────────────────────────────────

// CreateLeather godoc
// @Summary      Crear tipo de cuero
// @Tags         masters
// @Security     BearerAuth
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      201   {object}  dto.MasterResponse
// @Router       /api/leather-masters [post]
func (h *MasterHandler) CreateLeather(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.CreateLeatherMaster(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLeather godoc
// @Summary      Renombrar tipo de cuero
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/leather-masters/{id} [put]
func (h *MasterHandler) UpdateLeather(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.UpdateLeatherMaster(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// DeleteLeather godoc
// @Summary      Eliminar tipo de cuero (409 si tiene stock)
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/leather-masters/{id} [delete]
func (h *MasterHandler) DeleteLeather(c *fiber.Ctx) error {
	if err := h.uc.DeleteLeatherMaster(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLeather godoc
// @Summary      Listar tipos de cuero
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/leather-masters [get]
func (h *MasterHandler) ListLeather(c *fiber.Ctx) error {
	out, err := h.uc.ListLeatherMasters(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// ── maklun ────────────────────────────────────────────────────────────────────

// CreateMaklun godoc
// @Summary      Registrar maklun
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/maklun-masters [post]
func (h *MasterHandler) CreateMaklun(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.CreateMaklunMaster(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMaklun godoc
// @Summary      Renombrar maklun
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/maklun-masters/{id} [put]
func (h *MasterHandler) UpdateMaklun(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.UpdateMaklunMaster(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// DeleteMaklun godoc
// @Summary      Eliminar maklun (409 si figura en transacciones)
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/maklun-masters/{id} [delete]
func (h *MasterHandler) DeleteMaklun(c *fiber.Ctx) error {
	if err := h.uc.DeleteMaklunMaster(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMaklun godoc
// @Summary      Listar maklun
// @Tags         masters
// @Security     BearerAuth
// @Router       /api/maklun-masters [get]
func (h *MasterHandler) ListMaklun(c *fiber.Ctx) error {
	out, err := h.uc.ListMaklunMasters(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}
