package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/inventario-pyme/internal/application/analytics"
	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	CustomerUC    *usecase.CustomerUseCase
	StockTx       *inventory.RecordTransactionUseCase
	Replenishment *inventory.ReplenishmentUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockTx)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/transactions", productHandler.Transactions)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Stock transactions
	stockTx := api.Group("/stock-transactions")
	stockTxHandler := NewStockTransactionHandler(deps.StockTx)
	stockTx.Post("/", stockTxHandler.Create)
	stockTx.Get("/", stockTxHandler.List)
	stockTx.Get("/:id", stockTxHandler.GetByID)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Replenishment)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
	dashboard.Get("/low-stock", dashboardHandler.GetLowStock)
	dashboard.Get("/recent-activity", dashboardHandler.GetRecentActivity)
	dashboard.Get("/categories", dashboardHandler.GetCategories)
	dashboard.Get("/replenishment", dashboardHandler.GetReplenishmentList)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reports.Get("/stock", reportHandler.GetStock)
	reports.Get("/stock/export", reportHandler.ExportStock)
	reports.Get("/transactions/export", reportHandler.ExportTransactions)
}
