package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	acc accessor
}

// Create persiste un nuevo producto. El SKU debe ser único.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.acc.update(func(st *state) error {
		if product.ID == "" {
			product.ID = uuid.New().String()
		}
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		if skuTaken(st, product.SKU, "") {
			return domain.ErrDuplicate
		}
		st.products[product.ID] = product.Clone()
		st.productOrder = append(st.productOrder, product.ID)
		return nil
	})
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.acc.view(func(st *state) {
		out = st.products[id].Clone()
	})
	return out, nil
}

// GetBySKU obtiene un producto por SKU exacto.
func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	var out *entity.Product
	r.acc.view(func(st *state) {
		for _, id := range st.productOrder {
			if p := st.products[id]; p.SKU == sku {
				out = p.Clone()
				return
			}
		}
	})
	return out, nil
}

// GetForUpdate en memoria el bloqueo lo aporta Store.Run; equivale a GetByID.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update fusiona el patch sobre el producto existente.
func (r *ProductRepo) Update(_ context.Context, id string, p entity.ProductPatch) (*entity.Product, error) {
	var out *entity.Product
	err := r.acc.update(func(st *state) error {
		current, ok := st.products[id]
		if !ok {
			return nil
		}
		if p.SKU.HasValue() && skuTaken(st, p.SKU.Value, id) {
			return domain.ErrDuplicate
		}
		next := current.Clone()
		p.Apply(next)
		st.products[id] = next
		out = next.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetQuantity fija la cantidad en stock. Solo lo usa el motor de movimientos.
func (r *ProductRepo) SetQuantity(_ context.Context, id string, quantity int) error {
	return r.acc.update(func(st *state) error {
		current, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		next := current.Clone()
		next.Quantity = quantity
		st.products[id] = next
		return nil
	})
}

// Delete elimina un producto. Los movimientos que lo referencian se conservan.
func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	err := r.acc.update(func(st *state) error {
		if _, existed = st.products[id]; existed {
			delete(st.products, id)
			st.productOrder = removeID(st.productOrder, id)
		}
		return nil
	})
	return existed, err
}

// List devuelve los productos en orden de creación.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	r.acc.view(func(st *state) {
		out = make([]*entity.Product, 0, len(st.productOrder))
		for _, id := range st.productOrder {
			out = append(out, st.products[id].Clone())
		}
	})
	return out, nil
}

// Search busca la subcadena en nombre, SKU o categoría (sin distinguir mayúsculas).
func (r *ProductRepo) Search(_ context.Context, query string) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(query)
	out := []*entity.Product{}
	r.acc.view(func(st *state) {
		for _, id := range st.productOrder {
			p := st.products[id]
			if strings.Contains(fold.String(p.Name), needle) ||
				strings.Contains(fold.String(p.SKU), needle) ||
				strings.Contains(fold.String(p.Category), needle) {
				out = append(out, p.Clone())
			}
		}
	})
	return out, nil
}

func skuTaken(st *state, sku, exceptID string) bool {
	for id, p := range st.products {
		if id != exceptID && p.SKU == sku {
			return true
		}
	}
	return false
}
