package repository

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, id string, p entity.ContactPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
