package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	acc accessor
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	return r.acc.update(func(st *state) error {
		if supplier.ID == "" {
			supplier.ID = uuid.New().String()
		}
		if _, ok := st.suppliers[supplier.ID]; ok {
			return domain.ErrDuplicate
		}
		st.suppliers[supplier.ID] = supplier.Clone()
		st.supplierOrder = append(st.supplierOrder, supplier.ID)
		return nil
	})
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	r.acc.view(func(st *state) { out = st.suppliers[id].Clone() })
	return out, nil
}

// Update fusiona el patch sobre el proveedor existente.
func (r *SupplierRepo) Update(_ context.Context, id string, p entity.ContactPatch) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.acc.update(func(st *state) error {
		current, ok := st.suppliers[id]
		if !ok {
			return nil
		}
		next := current.Clone()
		p.ApplySupplier(next)
		st.suppliers[id] = next
		out = next.Clone()
		return nil
	})
	return out, err
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	err := r.acc.update(func(st *state) error {
		if _, existed = st.suppliers[id]; existed {
			delete(st.suppliers, id)
			st.supplierOrder = removeID(st.supplierOrder, id)
		}
		return nil
	})
	return existed, err
}

// List devuelve los proveedores en orden de creación.
func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	r.acc.view(func(st *state) {
		out = make([]*entity.Supplier, 0, len(st.supplierOrder))
		for _, id := range st.supplierOrder {
			out = append(out, st.suppliers[id].Clone())
		}
	})
	return out, nil
}

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	acc accessor
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	return r.acc.update(func(st *state) error {
		if customer.ID == "" {
			customer.ID = uuid.New().String()
		}
		if _, ok := st.customers[customer.ID]; ok {
			return domain.ErrDuplicate
		}
		st.customers[customer.ID] = customer.Clone()
		st.customerOrder = append(st.customerOrder, customer.ID)
		return nil
	})
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	r.acc.view(func(st *state) { out = st.customers[id].Clone() })
	return out, nil
}

// Update fusiona el patch sobre el cliente existente.
func (r *CustomerRepo) Update(_ context.Context, id string, p entity.ContactPatch) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.acc.update(func(st *state) error {
		current, ok := st.customers[id]
		if !ok {
			return nil
		}
		next := current.Clone()
		p.ApplyCustomer(next)
		st.customers[id] = next
		out = next.Clone()
		return nil
	})
	return out, err
}

// Delete elimina un cliente.
func (r *CustomerRepo) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	err := r.acc.update(func(st *state) error {
		if _, existed = st.customers[id]; existed {
			delete(st.customers, id)
			st.customerOrder = removeID(st.customerOrder, id)
		}
		return nil
	})
	return existed, err
}

// List devuelve los clientes en orden de creación.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	r.acc.view(func(st *state) {
		out = make([]*entity.Customer, 0, len(st.customerOrder))
		for _, id := range st.customerOrder {
			out = append(out, st.customers[id].Clone())
		}
	})
	return out, nil
}
