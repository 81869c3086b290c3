package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// CreateStockTransactionRequest body para POST /api/stock-transactions.
// total_value se completa como quantity × unit_price si no viene; sin reason se usa adjustment.
type CreateStockTransactionRequest struct {
	ProductID  string           `json:"product_id" validate:"required"`
	Type       string           `json:"type" validate:"required,oneof=in out"`
	Reason     string           `json:"reason" validate:"omitempty,oneof=purchase return sale wastage adjustment"`
	Quantity   int              `json:"quantity" validate:"gt=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"`
	TotalValue *decimal.Decimal `json:"total_value" validate:"omitempty,gte=0"`
	SupplierID *string          `json:"supplier_id"`
	CustomerID *string          `json:"customer_id"`
	Notes      *string          `json:"notes" validate:"omitempty,max=1000"`
}

// Validate reglas del request; devuelve *domain.ValidationError o nil.
func (r CreateStockTransactionRequest) Validate() error {
	verr, err := collect(r)
	if err != nil {
		return err
	}
	checkMoneyScale(verr, "unit_price", r.UnitPrice)
	checkMoneyScale(verr, "total_value", r.TotalValue)
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// StockTransactionResponse salida de un movimiento. Los campos de detalle
// (product_name, product_sku, ...) solo vienen en las lecturas enriquecidas.
type StockTransactionResponse struct {
	ID           string                   `json:"id"`
	ProductID    string                   `json:"product_id"`
	Type         entity.TransactionType   `json:"type"`
	Reason       entity.TransactionReason `json:"reason"`
	Quantity     int                      `json:"quantity"`
	UnitPrice    *decimal.Decimal         `json:"unit_price"`
	TotalValue   *decimal.Decimal         `json:"total_value"`
	SupplierID   *string                  `json:"supplier_id"`
	CustomerID   *string                  `json:"customer_id"`
	Notes        *string                  `json:"notes"`
	Timestamp    time.Time                `json:"timestamp"`
	ProductName  string                   `json:"product_name,omitempty"`
	ProductSKU   string                   `json:"product_sku,omitempty"`
	SupplierName *string                  `json:"supplier_name,omitempty"`
	CustomerName *string                  `json:"customer_name,omitempty"`
}

// NewStockTransactionResponse mapea un movimiento sin enriquecer.
func NewStockTransactionResponse(t *entity.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		ID:         t.ID,
		ProductID:  t.ProductID,
		Type:       t.Type,
		Reason:     t.Reason,
		Quantity:   t.Quantity,
		UnitPrice:  t.UnitPrice,
		TotalValue: t.TotalValue,
		SupplierID: t.SupplierID,
		CustomerID: t.CustomerID,
		Notes:      t.Notes,
		Timestamp:  t.Timestamp,
	}
}

// NewStockTransactionDetailsResponse mapea un movimiento enriquecido.
func NewStockTransactionDetailsResponse(t entity.StockTransactionWithDetails) StockTransactionResponse {
	out := NewStockTransactionResponse(&t.StockTransaction)
	out.ProductName = t.ProductName
	out.ProductSKU = t.ProductSKU
	out.SupplierName = t.SupplierName
	out.CustomerName = t.CustomerName
	return out
}

// NewStockTransactionDetailsResponses mapea una lista enriquecida (nunca nil).
func NewStockTransactionDetailsResponses(list []entity.StockTransactionWithDetails) []StockTransactionResponse {
	out := make([]StockTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewStockTransactionDetailsResponse(t))
	}
	return out
}
