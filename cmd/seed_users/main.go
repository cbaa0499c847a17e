// seed_users crea un usuario (ADMIN o USER) en la base PostgreSQL configurada.
// Si el username ya existe no hace nada.
//
// Uso: go run ./cmd/seed_users <username> <password> [ADMIN|USER]
// Rol por defecto: ADMIN. Lee DB_* / DATABASE_URL igual que cmd/api.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/gudang-sepatu/internal/application/auth"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/postgres"
	"github.com/jhoicas/gudang-sepatu/pkg/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_users <username> <password> [ADMIN|USER]")
		os.Exit(2)
	}
	username, password := os.Args[1], os.Args[2]
	role := entity.RoleAdmin
	if len(os.Args) > 3 {
		role = strings.ToUpper(strings.TrimSpace(os.Args[3]))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != "postgres" {
		fmt.Fprintln(os.Stderr, "seed_users requiere DB_DRIVER=postgres")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
	user, err := uc.RegisterUser(ctx, username, password, role)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Printf("Usuario %q ya existe, sin cambios\n", username)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("Usuario creado: %s (%s) id=%s\n", user.Username, user.Role, user.ID)
	}
}
