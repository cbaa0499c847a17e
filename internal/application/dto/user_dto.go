package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token de acceso + usuario. El refresh token viaja en cookie HttpOnly.
type LoginResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	RefreshToken string       `json:"-"`
}

// TokenResponse salida de POST /api/auth/refresh.
type TokenResponse struct {
	Token string `json:"token"`
}
