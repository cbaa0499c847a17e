package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/auth"
	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/application/usecase"
)

// RefreshCookie nombre de la cookie HttpOnly con el refresh token.
const RefreshCookie = "refreshToken"

// AuthHandler maneja login, refresh y logout.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	users      *usecase.UserUseCase
	errs       errorMapper
	refreshTTL time.Duration
	secure     bool
}

// NewAuthHandler construye el handler de auth. secure activa la bandera Secure de la cookie (producción).
func NewAuthHandler(uc *auth.AuthUseCase, users *usecase.UserUseCase, errs errorMapper, refreshTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{uc: uc, users: users, errs: errs, refreshTTL: refreshTTL, secure: secure}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return h.errs.respond(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	h.setRefreshCookie(c, out.RefreshToken, time.Now().Add(h.refreshTTL))
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar access token con la cookie refreshToken
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext(), c.Cookies(RefreshCookie))
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie refreshToken)
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.setRefreshCookie(c, "", time.Unix(0, 0))
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.users.GetByID(c.UserContext(), GetUserID(c))
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    value,
		Path:     "/api/auth",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
