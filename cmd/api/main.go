package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/gudang-sepatu/internal/application/auth"
	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/application/report"
	"github.com/jhoicas/gudang-sepatu/internal/application/usecase"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gudang-sepatu/internal/infrastructure/pdf"
	"github.com/jhoicas/gudang-sepatu/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/gudang-sepatu/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/gudang-sepatu/internal/interfaces/http"
	"github.com/jhoicas/gudang-sepatu/pkg/config"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Bool("finishing", cfg.Flow.FinishingEnabled).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner repository.TxRunner
		userRepo repository.UserRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		txRunner = store
		userRepo = memory.NewUserRepository(store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		txRunner = postgres.NewTxRunner(pool)
		userRepo = postgres.NewUserRepository(pool)
	}

	flow := domaininv.NewFlow(cfg.Flow.FinishingEnabled)
	stockUC := inventory.NewStockUseCase(txRunner, flow, log)
	snapshotUC := inventory.NewSnapshotUseCase(txRunner, flow)
	catalogUC := usecase.NewCatalogUseCase(txRunner, log)
	reportUC := report.NewReportUseCase(
		snapshotUC,
		infrapdf.NewStockReportGenerator(cfg.App.Name),
		infraxlsx.NewTransactionExporter(),
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		ExpMinutes:        cfg.JWT.Expiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})
	if cfg.DB.Driver == "memory" && cfg.Seed.AdminPassword != "" {
		if _, err := authUC.RegisterUser(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, entity.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario ADMIN inicial")
		}
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("usuario ADMIN inicial creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Gudang Sepatu API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		StockUC:       stockUC,
		SnapshotUC:    snapshotUC,
		CatalogUC:     catalogUC,
		UserUC:        usecase.NewUserUseCase(userRepo),
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshExpiration) * time.Minute,
		SecureCookies: cfg.App.Env == "production",
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
