// Package analytics contiene los casos de uso de lectura del tablero y los reportes
// de inventario. Todo se calcula al vuelo sobre el estado actual del almacén.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	invdomain "github.com/jhoicas/inventario-pyme/internal/domain/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// DefaultRecentLimit movimientos devueltos por RecentActivity si no se indica límite.
const DefaultRecentLimit = 10

// TransactionEnricher resuelve nombres de producto, proveedor y cliente.
type TransactionEnricher interface {
	Enrich(ctx context.Context, txs []*entity.StockTransaction) ([]entity.StockTransactionWithDetails, error)
}

// DashboardUseCase genera métricas, alertas de stock bajo, actividad reciente y
// resúmenes por categoría. Solo lectura.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	txRepo       repository.StockTransactionRepository
	enricher     TransactionEnricher
	recentLimit  int
}

// NewDashboardUseCase construye el caso de uso. recentLimit <= 0 usa DefaultRecentLimit.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	txRepo repository.StockTransactionRepository,
	enricher TransactionEnricher,
	recentLimit int,
) *DashboardUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &DashboardUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		txRepo:       txRepo,
		enricher:     enricher,
		recentLimit:  recentLimit,
	}
}

// Metrics KPIs del tablero. Productos y proveedores se cargan en paralelo.
// LowStockCount usa quantity <= reorder_level, por lo que incluye los agotados.
func (uc *DashboardUseCase) Metrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	var (
		products  []*entity.Product
		suppliers []*entity.Supplier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.productRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: productos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		suppliers, err = uc.supplierRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: proveedores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := entity.DashboardMetrics{TotalProducts: len(products), TotalStockValue: decimal.Zero}
	for _, p := range products {
		if invdomain.NeedsReorder(p.Quantity, p.ReorderLevel) {
			m.LowStockCount++
		}
		m.TotalStockValue = m.TotalStockValue.Add(p.StockValue())
	}
	for _, s := range suppliers {
		if s.IsActive {
			m.ActiveSuppliers++
		}
	}
	resp := dto.NewDashboardMetricsResponse(m)
	return &resp, nil
}

// LowStock productos en o bajo su punto de reorden (incluye agotados), en el orden del almacén.
func (uc *DashboardUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ProductWithStock, 0)
	for _, p := range products {
		if invdomain.NeedsReorder(p.Quantity, p.ReorderLevel) {
			out = append(out, invdomain.WithStock(p))
		}
	}
	return dto.NewProductResponses(out), nil
}

// RecentActivity últimos movimientos enriquecidos, del más reciente al más antiguo.
// limit <= 0 usa el límite configurado.
func (uc *DashboardUseCase) RecentActivity(ctx context.Context, limit int) ([]dto.StockTransactionResponse, error) {
	if limit <= 0 {
		limit = uc.recentLimit
	}
	txs, err := uc.txRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	details, err := uc.enricher.Enrich(ctx, txs)
	if err != nil {
		return nil, err
	}
	return dto.NewStockTransactionDetailsResponses(details), nil
}

// CategorySummary agrupa el catálogo por categoría: cantidad de productos y valor
// (precio × cantidad). Growth es siempre 0. Ordenado por nombre de categoría.
func (uc *DashboardUseCase) CategorySummary(ctx context.Context) ([]dto.CategorySummaryResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCategory := map[string]*entity.CategorySummary{}
	for _, p := range products {
		s, ok := byCategory[p.Category]
		if !ok {
			s = &entity.CategorySummary{Category: p.Category, TotalValue: decimal.Zero, Growth: decimal.Zero}
			byCategory[p.Category] = s
		}
		s.ProductCount++
		s.TotalValue = s.TotalValue.Add(p.StockValue())
	}
	list := make([]entity.CategorySummary, 0, len(byCategory))
	for _, s := range byCategory {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Category < list[j].Category })
	return dto.NewCategorySummaryResponses(list), nil
}

// StockReport catálogo completo con su estado de stock.
func (uc *DashboardUseCase) StockReport(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ProductWithStock, 0, len(products))
	for _, p := range products {
		out = append(out, invdomain.WithStock(p))
	}
	return dto.NewProductResponses(out), nil
}

// TransactionReport todos los movimientos enriquecidos (exportación).
func (uc *DashboardUseCase) TransactionReport(ctx context.Context) ([]dto.StockTransactionResponse, error) {
	txs, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	details, err := uc.enricher.Enrich(ctx, txs)
	if err != nil {
		return nil, err
	}
	return dto.NewStockTransactionDetailsResponses(details), nil
}
