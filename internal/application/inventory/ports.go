package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad entre el registro del movimiento y el ajuste de cantidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}

// StockEvent notificación emitida tras confirmar un movimiento.
type StockEvent struct {
	TransactionID     string                   `json:"transaction_id"`
	ProductID         string                   `json:"product_id"`
	ProductName       string                   `json:"product_name"`
	Type              entity.TransactionType   `json:"type"`
	Reason            entity.TransactionReason `json:"reason"`
	RequestedQuantity int                      `json:"requested_quantity"`
	AppliedQuantity   int                      `json:"applied_quantity"`
	PreviousQuantity  int                      `json:"previous_quantity"`
	NewQuantity       int                      `json:"new_quantity"`
	StockStatus       entity.StockStatus       `json:"stock_status"`
	Timestamp         time.Time                `json:"timestamp"`
}

// StockNotifier recibe los eventos de stock (p. ej. el hub WebSocket). Opcional.
type StockNotifier interface {
	StockChanged(ctx context.Context, evt StockEvent)
}
