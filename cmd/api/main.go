package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/inventario-pyme/internal/application/analytics"
	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/backend"
	httpRouter "github.com/jhoicas/inventario-pyme/internal/interfaces/http"
	"github.com/jhoicas/inventario-pyme/internal/interfaces/ws"
	"github.com/jhoicas/inventario-pyme/pkg/config"
	"github.com/jhoicas/inventario-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := backend.Open(ctx, *cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	hub := ws.NewHub(log.Component("ws"))
	go hub.Run(ctx)

	enricher := inventory.NewEnricher(store.Products, store.Suppliers, store.Customers)
	stockTxUC := inventory.NewRecordTransactionUseCase(store.TxRunner, store.Transactions, enricher, hub, log.Component("inventory"))
	replenishmentUC := inventory.NewReplenishmentUseCase(store.Products, store.Transactions)
	dashboardUC := appanalytics.NewDashboardUseCase(store.Products, store.Suppliers, store.Transactions, enricher, cfg.Dashboard.RecentLimit)
	productUC := usecase.NewProductUseCase(store.Products)
	supplierUC := usecase.NewSupplierUseCase(store.Suppliers)
	customerUC := usecase.NewCustomerUseCase(store.Customers)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"store":      store.Name,
			"ws_clients": hub.ClientCount(),
		})
	})

	// Feed de stock en vivo
	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws", hub.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		CustomerUC:    customerUC,
		StockTx:       stockTxUC,
		Replenishment: replenishmentUC,
		DashboardUC:   dashboardUC,
		Log:           log.Component("http"),
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
	stop()

	log.Info().Msg("aplicación detenida")
}
