package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/domain/patch"
)

// DefaultReorderLevel umbral de reposición cuando no se indica uno al crear.
const DefaultReorderLevel = 10

// MoneyScale decimales admitidos en precios e importes (NUMERIC(14,2) en BD).
const MoneyScale = 2

// ValidMoney indica si d no tiene más de MoneyScale decimales significativos.
func ValidMoney(d decimal.Decimal) bool {
	return d.Truncate(MoneyScale).Equal(d)
}

// Product representa un producto del catálogo.
// Quantity solo cambia vía movimientos de stock (StockTransaction).
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string
	Price        decimal.Decimal
	Quantity     int
	ReorderLevel int
	Description  *string
}

// Clone devuelve una copia independiente (incluye punteros).
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.Description != nil {
		d := *p.Description
		c.Description = &d
	}
	return &c
}

// StockValue valor del inventario del producto (precio × cantidad).
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// ProductPatch campos modificables de un producto. Quantity no está: se ajusta con movimientos.
type ProductPatch struct {
	SKU          patch.Field[string]
	Name         patch.Field[string]
	Category     patch.Field[string]
	Price        patch.Field[decimal.Decimal]
	ReorderLevel patch.Field[int]
	Description  patch.Field[string]
}

// IsEmpty indica que el patch no modifica nada.
func (p ProductPatch) IsEmpty() bool {
	return !p.SKU.Set && !p.Name.Set && !p.Category.Set && !p.Price.Set &&
		!p.ReorderLevel.Set && !p.Description.Set
}

// Apply fusiona el patch sobre el producto.
func (p ProductPatch) Apply(dst *Product) {
	p.SKU.ApplyValue(&dst.SKU)
	p.Name.ApplyValue(&dst.Name)
	p.Category.ApplyValue(&dst.Category)
	p.Price.ApplyValue(&dst.Price)
	p.ReorderLevel.ApplyValue(&dst.ReorderLevel)
	p.Description.ApplyTo(&dst.Description)
}
