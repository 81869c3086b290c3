package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/memory"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestProductUseCase_CreateYGet(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Hinges", Category: "Hardware", Price: decimal.RequireFromString("600"), Quantity: 0, ReorderLevel: intPtr(10),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SKU-\d+-[0-9A-F]{4}$`), created.SKU)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, got.StockStatus)
	assert.True(t, decimal.NewFromInt(600).Equal(got.Price))

	missing, err := uc.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUseCase_CreateDefaultsYDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "HW-1", Name: "Padlock", Category: "Hardware", Price: decimal.NewFromInt(50), Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReorderLevel, p.ReorderLevel)
	assert.Equal(t, entity.StatusInStock, p.StockStatus)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "HW-1", Name: "Otro", Category: "Hardware"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "el duplicado no se crea")
}

func TestProductUseCase_CreateValidacion(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Price: decimal.NewFromInt(-1), Quantity: -2})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["category"])
	assert.True(t, fields["price"])
	assert.True(t, fields["quantity"])
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "A", Name: "Hinges", Category: "Hardware", Price: decimal.NewFromInt(10), Quantity: 3, Description: strPtr("acero")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "B", Name: "Nails", Category: "Hardware", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)

	var req dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hinges XL","description":null}`), &req))
	updated, err := uc.Update(ctx, a.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Hinges XL", updated.Name)
	assert.Nil(t, updated.Description)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "A", updated.SKU)

	var dup dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"B"}`), &dup))
	_, err = uc.Update(ctx, a.ID, dup)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	var same dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"A"}`), &same))
	_, err = uc.Update(ctx, a.ID, same)
	assert.NoError(t, err, "conservar el propio SKU no es duplicado")

	var qty dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":99}`), &qty))
	_, err = uc.Update(ctx, a.ID, qty)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "quantity no es editable")

	none, err := uc.Update(ctx, "nope", req)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestProductUseCase_SearchYDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Door Handle", Category: "Hardware", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	_, err = uc.Search(ctx, "  ")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	found, err := uc.Search(ctx, "handle")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, p.ID, found[0].ID)

	existed, err := uc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	existed, err = uc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestProductUseCase_CreateNombreYCategoriaEnBlanco(t *testing.T) {
	repo := memory.NewStore().Products()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "   ", Category: "  ", Price: decimal.NewFromInt(1)})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []domain.FieldError{
		{Field: "name", Tag: "required"},
		{Field: "category", Tag: "required"},
	}, verr.Fields)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := uc.Create(ctx, dto.CreateProductRequest{SKU: " HNG-1 ", Name: "  Hinges ", Category: " Hardware", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "HNG-1", created.SKU)
	assert.Equal(t, "Hinges", created.Name)
	assert.Equal(t, "Hardware", created.Category)
}

func TestProductUseCase_PrecioConMasDeDosDecimales(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()
	scaleErr := domain.FieldError{Field: "price", Tag: "scale", Param: "2"}

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Hinges", Category: "Hardware", Price: decimal.RequireFromString("10.005")})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domain.FieldError{scaleErr}, verr.Fields)

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Hinges", Category: "Hardware", Price: decimal.RequireFromString("10.500")})
	require.NoError(t, err, "ceros finales no cuentan como decimales")
	assert.True(t, decimal.RequireFromString("10.5").Equal(created.Price))

	var req dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":"1.999"}`), &req))
	_, err = uc.Update(ctx, created.ID, req)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domain.FieldError{scaleErr}, verr.Fields)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.5").Equal(got.Price))
}
