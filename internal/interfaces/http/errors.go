package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation          = "VALIDATION"
	CodeNotFound            = "NOT_FOUND"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeInUse               = "IN_USE"
	CodeInvalidTransferFlow = "INVALID_TRANSFER_FLOW"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInternal            = "INTERNAL"
)

// errorMapper traduce errores de dominio a respuestas HTTP. Los 500 se registran y no exponen el detalle.
type errorMapper struct {
	log *logger.Logger
}

func (m errorMapper) respond(c *fiber.Ctx, err error) error {
	status, body := m.classify(err)
	if status == fiber.StatusInternalServerError {
		m.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

func (m errorMapper) classify(err error) (int, dto.ErrorResponse) {
	var (
		verr *domain.ValidationError
		serr *domain.InsufficientStockError
		derr *domain.DuplicateError
		uerr *domain.InUseError
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: verr.Message}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidTransferFlow):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeInvalidTransferFlow, Message: err.Error()}
	case errors.As(err, &serr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeInsufficientStock, Message: serr.Error()}
	case errors.As(err, &derr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeAlreadyExists, Message: derr.Error()}
	case errors.As(err, &uerr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeInUse, Message: uerr.Error()}
	case errors.Is(err, domain.ErrInUse):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeInUse, Message: domain.ErrInUse.Error()}
	case errors.Is(err, domain.ErrMasterNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: domain.ErrMasterNotFound.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: "username atau password salah"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Message: domain.ErrForbidden.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: "terjadi kesalahan pada server"}
	}
}
