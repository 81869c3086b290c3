package usecase

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor; activo salvo que se indique lo contrario.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		IsActive: true,
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	resp := dto.NewSupplierResponse(supplier)
	return &resp, nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	resp := dto.NewSupplierResponse(s)
	return &resp, nil
}

// List lista los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSupplierResponse(s))
	}
	return out, nil
}

// Update actualización parcial; nil si no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateContactRequest) (*dto.SupplierResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, err := uc.repo.Update(ctx, id, in.ToPatch())
	if err != nil || s == nil {
		return nil, err
	}
	resp := dto.NewSupplierResponse(s)
	return &resp, nil
}

// Delete elimina un proveedor. Devuelve false si no existía.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
