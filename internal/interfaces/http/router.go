package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gudang-sepatu/internal/application/auth"
	"github.com/jhoicas/gudang-sepatu/internal/application/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/application/report"
	"github.com/jhoicas/gudang-sepatu/internal/application/usecase"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	StockUC    *inventory.StockUseCase
	SnapshotUC *inventory.SnapshotUseCase
	CatalogUC  *usecase.CatalogUseCase
	UserUC     *usecase.UserUseCase
	ReportUC   *report.ReportUseCase
	JWTSecret  string
	RefreshTTL time.Duration
	// SecureCookies marca la cookie de refresh como Secure (producción).
	SecureCookies bool
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	errs := errorMapper{log: log}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, errs, deps.RefreshTTL, deps.SecureCookies)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token). Las mutaciones requieren además rol ADMIN.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Lecturas
	dataHandler := NewDataHandler(deps.SnapshotUC, errs)
	reportHandler := NewReportHandler(deps.ReportUC, errs)
	protected.Get("/data/all", dataHandler.All)
	protected.Get("/transactions", dataHandler.Transactions)
	protected.Get("/transactions/export", reportHandler.ExportTransactions)
	protected.Get("/reports/stock.pdf", reportHandler.StockPDF)

	// Inventario
	inv := protected.Group("/inventory", adminOnly)
	invHandler := NewInventoryHandler(deps.StockUC, errs)
	inv.Post("/shoe", invHandler.ShoeOperation)
	inv.Put("/shoe/:id", invHandler.AdjustShoe)
	inv.Delete("/shoe/:id", invHandler.DeleteShoe)
	inv.Post("/leather", invHandler.LeatherOperation)
	inv.Put("/leather/:id", invHandler.AdjustLeather)
	inv.Delete("/leather/:id", invHandler.DeleteLeather)

	// Maestros: lectura para cualquier usuario, escritura solo ADMIN
	masterHandler := NewMasterHandler(deps.CatalogUC, errs)

	shoeMasters := protected.Group("/shoe-masters")
	shoeMasters.Get("/", masterHandler.ListShoe)
	shoeMasters.Post("/", adminOnly, masterHandler.CreateShoe)
	shoeMasters.Put("/:id", adminOnly, masterHandler.UpdateShoe)
	shoeMasters.Delete("/:id", adminOnly, masterHandler.DeleteShoe)

	leatherMasters := protected.Group("/leather-masters")
	leatherMasters.Get("/", masterHandler.ListLeather)
	leatherMasters.Post("/", adminOnly, masterHandler.CreateLeather)
	leatherMasters.Put("/:id", adminOnly, masterHandler.UpdateLeather)
	leatherMasters.Delete("/:id", adminOnly, masterHandler.DeleteLeather)

	maklunMasters := protected.Group("/maklun-masters")
	maklunMasters.Get("/", masterHandler.ListMaklun)
	maklunMasters.Post("/", adminOnly, masterHandler.CreateMaklun)
	maklunMasters.Put("/:id", adminOnly, masterHandler.UpdateMaklun)
	maklunMasters.Delete("/:id", adminOnly, masterHandler.DeleteMaklun)
}
