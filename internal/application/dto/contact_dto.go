package dto

import (
	"strings"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/patch"
)

// CreateSupplierRequest entrada para crear un proveedor. is_active por defecto true.
type CreateSupplierRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Address  *string `json:"address" validate:"omitempty,max=500"`
	IsActive *bool   `json:"is_active"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// Normalize recorta el nombre antes de validar.
func (r *CreateSupplierRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

// Normalize recorta el nombre antes de validar.
func (r *CreateCustomerRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

// UpdateContactRequest actualización parcial de proveedor o cliente; null limpia
// email, phone y address. is_active se ignora para clientes.
type UpdateContactRequest struct {
	Name     patch.Field[string] `json:"name"`
	Email    patch.Field[string] `json:"email"`
	Phone    patch.Field[string] `json:"phone"`
	Address  patch.Field[string] `json:"address"`
	IsActive patch.Field[bool]   `json:"is_active"`
}

// Validate comprueba las reglas del patch; devuelve *domain.ValidationError o nil.
func (r UpdateContactRequest) Validate() error {
	verr := domain.NewValidationError()
	requiredNotNull(verr, "name", r.Name.Set, r.Name.Null, strings.TrimSpace(r.Name.Value) == "")
	requiredNotNull(verr, "is_active", r.IsActive.Set, r.IsActive.Null, false)
	if r.Email.HasValue() && !strings.Contains(r.Email.Value, "@") {
		verr.Add("email", "email", "")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ToPatch convierte la petición al patch de dominio.
func (r UpdateContactRequest) ToPatch() entity.ContactPatch {
	return entity.ContactPatch{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		IsActive: r.IsActive,
	}
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// NewSupplierResponse mapea la entidad a la respuesta.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone, Address: s.Address, IsActive: s.IsActive}
}

// NewCustomerResponse mapea la entidad a la respuesta.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}
