package usecase

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// GetByID obtiene un cliente; nil si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(c)
	return &resp, nil
}

// List lista los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Update actualización parcial; nil si no existe. is_active se ignora.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateContactRequest) (*dto.CustomerResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, id, in.ToPatch())
	if err != nil || c == nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(c)
	return &resp, nil
}

// Delete elimina un cliente. Devuelve false si no existía.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
