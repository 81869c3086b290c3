// Package backend abre el almacenamiento elegido en la configuración y expone
// sus repositorios como puertos de dominio.
package backend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-pyme/pkg/config"
)

// Backend repositorios y unidad de trabajo de un almacenamiento concreto.
type Backend struct {
	Name         string
	Products     repository.ProductRepository
	Suppliers    repository.SupplierRepository
	Customers    repository.CustomerRepository
	Transactions repository.StockTransactionRepository
	TxRunner     inventory.TxRunner
	close        func()
}

// Open construye el backend indicado por cfg.Store.Backend. Con postgres abre el
// pool y, si cfg.DB.Migrate, aplica el esquema embebido.
func Open(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store := memory.NewStore()
		log.Info().Msg("almacenamiento en memoria (los datos se pierden al reiniciar)")
		return &Backend{
			Name:         config.BackendMemory,
			Products:     store.Products(),
			Suppliers:    store.Suppliers(),
			Customers:    store.Customers(),
			Transactions: store.Transactions(),
			TxRunner:     store,
			close:        func() {},
		}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Msg("esquema de base de datos aplicado")
		}
		return &Backend{
			Name:         config.BackendPostgres,
			Products:     postgres.NewProductRepository(pool),
			Suppliers:    postgres.NewSupplierRepository(pool),
			Customers:    postgres.NewCustomerRepository(pool),
			Transactions: postgres.NewStockTransactionRepository(pool),
			TxRunner:     postgres.NewTxRunner(pool),
			close:        pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("backend de almacenamiento desconocido: %q", cfg.Store.Backend)
}

// Close libera los recursos del backend (pool de conexiones).
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}
