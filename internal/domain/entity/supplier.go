package entity

// Supplier representa un proveedor (origen de entradas por compra).
type Supplier struct {
	ID       string
	Name     string
	Email    *string
	Phone    *string
	Address  *string
	IsActive bool
}

// Clone devuelve una copia independiente.
func (s *Supplier) Clone() *Supplier {
	if s == nil {
		return nil
	}
	out := *s
	out.Email = cloneString(s.Email)
	out.Phone = cloneString(s.Phone)
	out.Address = cloneString(s.Address)
	return &out
}
