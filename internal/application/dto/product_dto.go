package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/patch"
)

// CreateProductRequest entrada para crear un producto. Sin SKU se genera uno;
// sin reorder_level se usa entity.DefaultReorderLevel.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"omitempty,max=100"`
	Name         string          `json:"name" validate:"required,max=200"`
	Category     string          `json:"category" validate:"required,max=100"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	ReorderLevel *int            `json:"reorder_level" validate:"omitempty,gte=0"`
	Description  *string         `json:"description"`
}

// Normalize recorta los espacios de los campos de texto; se aplica antes de Validate.
func (r *CreateProductRequest) Normalize() {
	r.SKU = strings.TrimSpace(r.SKU)
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
}

// Validate reglas de alta; devuelve *domain.ValidationError o nil.
func (r CreateProductRequest) Validate() error {
	verr, err := collect(r)
	if err != nil {
		return err
	}
	checkMoneyScale(verr, "price", &r.Price)
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// UpdateProductRequest actualización parcial. Los campos ausentes no se tocan y
// "description": null la limpia. quantity no es editable (solo vía movimientos).
type UpdateProductRequest struct {
	SKU          patch.Field[string]          `json:"sku"`
	Name         patch.Field[string]          `json:"name"`
	Category     patch.Field[string]          `json:"category"`
	Price        patch.Field[decimal.Decimal] `json:"price"`
	ReorderLevel patch.Field[int]             `json:"reorder_level"`
	Description  patch.Field[string]          `json:"description"`
	Quantity     patch.Field[int]             `json:"quantity"`
}

// Validate comprueba las reglas del patch; devuelve *domain.ValidationError o nil.
func (r UpdateProductRequest) Validate() error {
	verr := domain.NewValidationError()
	requiredNotNull(verr, "sku", r.SKU.Set, r.SKU.Null, strings.TrimSpace(r.SKU.Value) == "")
	requiredNotNull(verr, "name", r.Name.Set, r.Name.Null, strings.TrimSpace(r.Name.Value) == "")
	requiredNotNull(verr, "category", r.Category.Set, r.Category.Null, strings.TrimSpace(r.Category.Value) == "")
	requiredNotNull(verr, "price", r.Price.Set, r.Price.Null, false)
	requiredNotNull(verr, "reorder_level", r.ReorderLevel.Set, r.ReorderLevel.Null, false)
	if r.Price.HasValue() && r.Price.Value.IsNegative() {
		verr.Add("price", "gte", "0")
	}
	if r.Price.HasValue() {
		checkMoneyScale(verr, "price", &r.Price.Value)
	}
	if r.ReorderLevel.HasValue() && r.ReorderLevel.Value < 0 {
		verr.Add("reorder_level", "gte", "0")
	}
	if r.Quantity.Set {
		verr.Add("quantity", "readonly", "")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ToPatch convierte la petición al patch de dominio.
func (r UpdateProductRequest) ToPatch() entity.ProductPatch {
	return entity.ProductPatch{
		SKU:          r.SKU,
		Name:         r.Name,
		Category:     r.Category,
		Price:        r.Price,
		ReorderLevel: r.ReorderLevel,
		Description:  r.Description,
	}
}

// ProductResponse salida de un producto con su estado de stock.
type ProductResponse struct {
	ID           string             `json:"id"`
	SKU          string             `json:"sku"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Price        decimal.Decimal    `json:"price"`
	Quantity     int                `json:"quantity"`
	ReorderLevel int                `json:"reorder_level"`
	Description  *string            `json:"description"`
	StockStatus  entity.StockStatus `json:"stock_status"`
}

// NewProductResponse mapea la vista de dominio a la respuesta.
func NewProductResponse(p entity.ProductWithStock) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		Description:  p.Description,
		StockStatus:  p.StockStatus,
	}
}

// NewProductResponses mapea una lista (nunca nil, para serializar []).
func NewProductResponses(list []entity.ProductWithStock) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}
