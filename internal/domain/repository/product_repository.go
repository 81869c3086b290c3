package repository

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueándolo hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update fusiona el patch; devuelve nil si el producto no existe (nunca crea).
	Update(ctx context.Context, id string, p entity.ProductPatch) (*entity.Product, error)
	// SetQuantity reservado al motor de movimientos.
	SetQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Search coincidencia parcial sin distinguir mayúsculas en nombre, SKU y categoría.
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}
