package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/patch"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

func newProduct(sku, name, category string) *entity.Product {
	return &entity.Product{
		SKU:          sku,
		Name:         name,
		Category:     category,
		Price:        decimal.NewFromInt(100),
		ReorderLevel: entity.DefaultReorderLevel,
	}
}

func TestProductRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()

	p := newProduct("SKU-1", "Hinges", "Hardware")
	p.Description = strPtr("bisagra de acero")
	require.NoError(t, repo.Create(ctx, p))
	require.NotEmpty(t, p.ID, "Create debe asignar ID")

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hinges", got.Name)

	missing, err := repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing, "un ID inexistente no es error")

	updated, err := repo.Update(ctx, p.ID, entity.ProductPatch{
		Name:        patch.Value("Hinges XL"),
		Description: patch.Null[string](),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Hinges XL", updated.Name)
	assert.Equal(t, "Hardware", updated.Category, "los campos ausentes se conservan")
	assert.Nil(t, updated.Description, "null limpia la descripción")

	none, err := repo.Update(ctx, "no-existe", entity.ProductPatch{Name: patch.Value("x")})
	require.NoError(t, err)
	assert.Nil(t, none, "Update nunca crea")

	existed, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	existed, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestProductRepo_SKUUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()

	require.NoError(t, repo.Create(ctx, newProduct("SKU-1", "Padlock", "Hardware")))
	err := repo.Create(ctx, newProduct("SKU-1", "Otro", "Hardware"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	other := newProduct("SKU-2", "Nails", "Hardware")
	require.NoError(t, repo.Create(ctx, other))
	_, err = repo.Update(ctx, other.ID, entity.ProductPatch{SKU: patch.Value("SKU-1")})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	bySKU, err := repo.GetBySKU(ctx, "SKU-2")
	require.NoError(t, err)
	require.NotNil(t, bySKU)
	assert.Equal(t, other.ID, bySKU.ID)
}

func TestProductRepo_Search(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	require.NoError(t, repo.Create(ctx, newProduct("HW-001", "Door Handle", "Hardware")))
	require.NoError(t, repo.Create(ctx, newProduct("PW-001", "MDF Board", "Plywood")))
	require.NoError(t, repo.Create(ctx, newProduct("HW-002", "Padlock", "Hardware")))

	byName, err := repo.Search(ctx, "door")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Door Handle", byName[0].Name)

	byCategory, err := repo.Search(ctx, "HARDWARE")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySKU, err := repo.Search(ctx, "pw-")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "MDF Board", bySKU[0].Name)

	none, err := repo.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	p := newProduct("SKU-1", "Screws", "Hardware")
	require.NoError(t, repo.Create(ctx, p))

	got, _ := repo.GetByID(ctx, p.ID)
	got.Quantity = 999
	again, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, 0, again.Quantity, "modificar el resultado no debe alterar el almacén")
}

func TestContactRepos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	s := &entity.Supplier{Name: "Ferretería Central", Email: strPtr("ventas@central.co"), IsActive: true}
	require.NoError(t, store.Suppliers().Create(ctx, s))
	upd, err := store.Suppliers().Update(ctx, s.ID, entity.ContactPatch{
		Email:    patch.Null[string](),
		IsActive: patch.Value(false),
	})
	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.Nil(t, upd.Email)
	assert.False(t, upd.IsActive)
	assert.Equal(t, "Ferretería Central", upd.Name)

	c := &entity.Customer{Name: "Carpintería Ruiz", Phone: strPtr("300 000 0000")}
	require.NoError(t, store.Customers().Create(ctx, c))
	list, err := store.Customers().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "300 000 0000", *list[0].Phone)

	existed, err := store.Customers().Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	gone, err := store.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestStockTransactionRepo_OrdenMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Transactions()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := &entity.StockTransaction{ProductID: "p1", Type: entity.TransactionIn, Reason: entity.ReasonPurchase, Quantity: 1, Timestamp: base}
	second := &entity.StockTransaction{ProductID: "p1", Type: entity.TransactionIn, Reason: entity.ReasonPurchase, Quantity: 2, Timestamp: base}
	// reloj que retrocede: el repositorio lo iguala al último timestamp
	third := &entity.StockTransaction{ProductID: "p2", Type: entity.TransactionOut, Reason: entity.ReasonSale, Quantity: 3, Timestamp: base.Add(-time.Hour)}
	for _, tx := range []*entity.StockTransaction{first, second, third} {
		require.NoError(t, repo.Create(ctx, tx))
	}
	assert.Equal(t, base, third.Timestamp)
	assert.Equal(t, int64(3), third.Sequence)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{all[0].Quantity, all[1].Quantity, all[2].Quantity})

	byProduct, err := repo.ListByProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProduct, 2)
	assert.Equal(t, second.ID, byProduct[0].ID)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID)

	empty, err := repo.ListByProduct(ctx, "missing-id")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_RunDescartaCambiosAlFallar(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := newProduct("SKU-1", "Bolts", "Hardware")
	require.NoError(t, store.Products().Create(ctx, p))

	boom := errors.New("boom")
	err := store.Run(ctx, func(products repository.ProductRepository, txs repository.StockTransactionRepository) error {
		require.NoError(t, products.SetQuantity(ctx, p.ID, 50))
		require.NoError(t, txs.Create(ctx, &entity.StockTransaction{ProductID: p.ID, Type: entity.TransactionIn, Quantity: 50}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 0, got.Quantity, "rollback: la cantidad no cambia")
	all, _ := store.Transactions().List(ctx)
	assert.Empty(t, all, "rollback: no queda el movimiento")

	err = store.Run(ctx, func(products repository.ProductRepository, txs repository.StockTransactionRepository) error {
		return products.SetQuantity(ctx, p.ID, 7)
	})
	require.NoError(t, err)
	got, _ = store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 7, got.Quantity)
}
