// Package routes defines the API routing configuration. It wires the
// ledger repository, the fraud engine and the services into their
// handlers and groups the routes by surface.
package routes

import (
	"antifraud/internal/config"
	"antifraud/internal/handlers"
	"antifraud/internal/middleware"
	"antifraud/internal/repositories"
	"antifraud/internal/repositories/cache"
	"antifraud/internal/services/account"
	"antifraud/internal/services/fraud"
	"antifraud/internal/services/invoice"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires all application routes. The database handle and the
// cache are passed in explicitly; nothing here holds global state.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	ledger := repositories.NewLedgerRepository(db)
	engine := fraud.NewEngine()

	var verdictCache invoice.VerdictCache
	if cacheService != nil {
		verdictCache = cacheService
	}
	invoiceService := invoice.NewService(ledger, engine, verdictCache)
	accountService := account.NewService(ledger)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	adminHandler := handlers.NewAdminHandler(accountService)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Post("/invoices/process", invoiceHandler.ProcessInvoice)
	api.Get("/invoices/:id", invoiceHandler.GetInvoice)
	api.Get("/accounts/:id/invoices", invoiceHandler.ListAccountInvoices)

	admin := api.Group("/admin", middleware.AdminAuth(config.GetEnv("JWT_SECRET", "antifraud")))
	admin.Put("/accounts/:id/flag", adminHandler.FlagAccount)
}
