package repository

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, id string, p entity.ContactPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
