package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-pyme/internal/application/analytics"
	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/memory"
)

type env struct {
	store  *memory.Store
	engine *inventory.RecordTransactionUseCase
	uc     *analytics.DashboardUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	enricher := inventory.NewEnricher(store.Products(), store.Suppliers(), store.Customers())
	return &env{
		store:  store,
		engine: inventory.NewRecordTransactionUseCase(store, store.Transactions(), enricher, nil, zerolog.Nop()),
		uc:     analytics.NewDashboardUseCase(store.Products(), store.Suppliers(), store.Transactions(), enricher, 0),
	}
}

func (e *env) product(t *testing.T, name, category string, price int64, qty, reorder int) *entity.Product {
	t.Helper()
	p := &entity.Product{SKU: "SKU-" + name, Name: name, Category: category, Price: decimal.NewFromInt(price), Quantity: qty, ReorderLevel: reorder}
	require.NoError(t, e.store.Products().Create(context.Background(), p))
	return p
}

func TestMetrics(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.product(t, "Hinges", "Hardware", 100, 2, 10) // bajo
	e.product(t, "Padlock", "Hardware", 50, 0, 5)  // agotado, cuenta como bajo
	e.product(t, "MDF", "Plywood", 1000, 30, 10)   // ok
	e.product(t, "Edge", "Plywood", 10, 10, 10)    // en el umbral, bajo
	require.NoError(t, e.store.Suppliers().Create(ctx, &entity.Supplier{Name: "A", IsActive: true}))
	require.NoError(t, e.store.Suppliers().Create(ctx, &entity.Supplier{Name: "B", IsActive: false}))

	m, err := e.uc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, m.TotalProducts)
	assert.Equal(t, 3, m.LowStockCount)
	assert.True(t, decimal.NewFromInt(30300).Equal(m.TotalStockValue), m.TotalStockValue.String())
	assert.Equal(t, 1, m.ActiveSuppliers)

	again, err := e.uc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, again, "lecturas sin escrituras intermedias son idénticas")
}

func TestMetrics_CatalogoVacio(t *testing.T) {
	m, err := newEnv(t).uc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalProducts)
	assert.True(t, m.TotalStockValue.IsZero())
}

func TestLowStockYStockReport(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.product(t, "Hinges", "Hardware", 100, 2, 10)
	e.product(t, "Padlock", "Hardware", 50, 0, 0)
	e.product(t, "MDF", "Plywood", 1000, 30, 10)

	low, err := e.uc.LowStock(ctx)
	require.NoError(t, err)
	statuses := map[string]entity.StockStatus{}
	for _, p := range low {
		statuses[p.Name] = p.StockStatus
	}
	assert.Equal(t, map[string]entity.StockStatus{
		"Hinges":  entity.StatusLowStock,
		"Padlock": entity.StatusOutOfStock,
	}, statuses)

	report, err := e.uc.StockReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 3)
	for _, p := range report {
		if p.Name == "MDF" {
			assert.Equal(t, entity.StatusInStock, p.StockStatus)
		}
	}
}

func TestCategorySummary(t *testing.T) {
	e := newEnv(t)
	e.product(t, "Plywood 18mm", "Plywood", 900, 1, 10)
	e.product(t, "Hinges", "Hardware", 100, 2, 10)
	e.product(t, "Handles", "Hardware", 50, 4, 10)

	summary, err := e.uc.CategorySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Hardware", summary[0].Category, "ordenado por categoría")
	assert.Equal(t, 2, summary[0].ProductCount)
	assert.True(t, decimal.NewFromInt(400).Equal(summary[0].TotalValue), summary[0].TotalValue.String())
	assert.Equal(t, "Plywood", summary[1].Category)
	assert.True(t, decimal.NewFromInt(900).Equal(summary[1].TotalValue))
}

func TestRecentActivity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := e.product(t, "Hinges", "Hardware", 100, 100, 10)

	for i := 1; i <= 12; i++ {
		_, err := e.engine.Record(ctx, inventory.TransactionInput{
			ProductID: p.ID, Type: entity.TransactionOut, Reason: entity.ReasonSale, Quantity: i,
		})
		require.NoError(t, err)
	}

	recent, err := e.uc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, analytics.DefaultRecentLimit)
	assert.Equal(t, 12, recent[0].Quantity, "el más reciente primero")
	assert.Equal(t, "Hinges", recent[0].ProductName)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.After(recent[i-1].Timestamp))
	}

	three, err := e.uc.RecentActivity(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, three, 3)

	all, err := e.uc.TransactionReport(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)
}
