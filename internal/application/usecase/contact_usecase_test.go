package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/memory"
)

func TestSupplierUseCase(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewStore().Suppliers())
	ctx := context.Background()

	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Maderas del Norte", Email: strPtr("ventas@norte.co")})
	require.NoError(t, err)
	assert.True(t, s.IsActive, "activo por defecto")

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "X", Email: strPtr("no-es-email")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var req dto.UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":null,"is_active":false}`), &req))
	updated, err := uc.Update(ctx, s.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.Email)
	assert.False(t, updated.IsActive)

	var bad dto.UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &bad))
	_, err = uc.Update(ctx, s.ID, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "name no se puede limpiar")

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	existed, err := uc.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	got, err := uc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomerUseCase(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewStore().Customers())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCustomerRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Carpintería Ruiz", Phone: strPtr("300 123 4567"), Address: strPtr("Calle 1")})
	require.NoError(t, err)

	var req dto.UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"address":null,"name":"Carpintería Ruiz SAS"}`), &req))
	updated, err := uc.Update(ctx, c.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Carpintería Ruiz SAS", updated.Name)
	assert.Nil(t, updated.Address)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "300 123 4567", *updated.Phone)

	none, err := uc.Update(ctx, "nope", req)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestContactUseCases_NombreEnBlanco(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	requiredName := []domain.FieldError{{Field: "name", Tag: "required"}}

	suppliers := usecase.NewSupplierUseCase(store.Suppliers())
	_, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "  "})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, requiredName, verr.Fields)

	customers := usecase.NewCustomerUseCase(store.Customers())
	_, err = customers.Create(ctx, dto.CreateCustomerRequest{Name: "\t "})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, requiredName, verr.Fields)

	sl, err := suppliers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sl)
	cl, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cl)

	c, err := customers.Create(ctx, dto.CreateCustomerRequest{Name: " Jane "})
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.Name)
}
