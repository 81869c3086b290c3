package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// DashboardMetricsResponse respuesta de GET /api/dashboard/metrics.
type DashboardMetricsResponse struct {
	TotalProducts   int             `json:"total_products"`
	LowStockCount   int             `json:"low_stock_count"` // incluye agotados
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	ActiveSuppliers int             `json:"active_suppliers"`
}

// CategorySummaryResponse fila de GET /api/dashboard/categories.
type CategorySummaryResponse struct {
	Category     string          `json:"category"`
	ProductCount int             `json:"product_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Growth       decimal.Decimal `json:"growth"`
}

// NewDashboardMetricsResponse mapea las métricas.
func NewDashboardMetricsResponse(m entity.DashboardMetrics) DashboardMetricsResponse {
	return DashboardMetricsResponse(m)
}

// NewCategorySummaryResponses mapea el resumen por categoría (nunca nil).
func NewCategorySummaryResponses(list []entity.CategorySummary) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CategorySummaryResponse(c))
	}
	return out
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo
// su punto de reorden.
type ReplenishmentSuggestionDTO struct {
	ProductID           string             `json:"product_id"`
	SKU                 string             `json:"sku"`
	ProductName         string             `json:"product_name"`
	Category            string             `json:"category"`
	CurrentStock        int                `json:"current_stock"`
	ReorderLevel        int                `json:"reorder_level"`
	IdealStock          int                `json:"ideal_stock"`         // ceil(reorder_level * 1.5)
	SuggestedOrderQty   int                `json:"suggested_order_qty"` // ideal_stock - current_stock
	UnitCost            decimal.Decimal    `json:"unit_cost"`           // costo promedio ponderado de compras o precio de venta
	EstimatedOrderCost  decimal.Decimal    `json:"estimated_order_cost"`
	UnitsSoldLast90Days int                `json:"units_sold_last_90d"`
	StockStatus         entity.StockStatus `json:"stock_status"`
	Priority            int                `json:"priority"` // 1 = más urgente
}
