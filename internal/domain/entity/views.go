package entity

import "github.com/shopspring/decimal"

// Placeholders usados al enriquecer movimientos cuyo producto ya no existe.
const (
	UnknownProductName = "Unknown Product"
	UnknownProductSKU  = "Unknown SKU"
)

// StockStatus clasificación del stock de un producto.
type StockStatus string

// Estados de stock.
const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

// ProductWithStock producto con su estado de stock calculado.
type ProductWithStock struct {
	Product
	StockStatus StockStatus
}

// StockTransactionWithDetails movimiento con nombres desnormalizados para mostrar.
type StockTransactionWithDetails struct {
	StockTransaction
	ProductName  string
	ProductSKU   string
	SupplierName *string
	CustomerName *string
}

// DashboardMetrics KPIs del tablero principal.
type DashboardMetrics struct {
	TotalProducts   int
	LowStockCount   int
	TotalStockValue decimal.Decimal
	ActiveSuppliers int
}

// CategorySummary resumen de inventario por categoría.
// Growth no tiene cálculo de tendencia todavía; siempre es cero.
type CategorySummary struct {
	Category     string
	ProductCount int
	TotalValue   decimal.Decimal
	Growth       decimal.Decimal
}
