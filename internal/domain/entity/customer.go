package entity

import "github.com/jhoicas/inventario-pyme/internal/domain/patch"

// Customer representa un cliente (destino de salidas por venta).
type Customer struct {
	ID      string
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// Clone devuelve una copia independiente.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Email = cloneString(c.Email)
	out.Phone = cloneString(c.Phone)
	out.Address = cloneString(c.Address)
	return &out
}

// ContactPatch campos modificables de proveedores y clientes.
// IsActive solo aplica a proveedores.
type ContactPatch struct {
	Name     patch.Field[string]
	Email    patch.Field[string]
	Phone    patch.Field[string]
	Address  patch.Field[string]
	IsActive patch.Field[bool]
}

// ApplyCustomer fusiona el patch sobre un cliente.
func (p ContactPatch) ApplyCustomer(dst *Customer) {
	p.Name.ApplyValue(&dst.Name)
	p.Email.ApplyTo(&dst.Email)
	p.Phone.ApplyTo(&dst.Phone)
	p.Address.ApplyTo(&dst.Address)
}

// ApplySupplier fusiona el patch sobre un proveedor.
func (p ContactPatch) ApplySupplier(dst *Supplier) {
	p.Name.ApplyValue(&dst.Name)
	p.Email.ApplyTo(&dst.Email)
	p.Phone.ApplyTo(&dst.Phone)
	p.Address.ApplyTo(&dst.Address)
	p.IsActive.ApplyValue(&dst.IsActive)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
