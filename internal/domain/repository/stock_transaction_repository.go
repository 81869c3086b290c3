package repository

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// StockTransactionRepository define el puerto de persistencia para movimientos de stock.
// No hay Update ni Delete: los movimientos son inmutables.
// Los listados van del más reciente al más antiguo (Timestamp, luego Sequence).
type StockTransactionRepository interface {
	// Create asigna ID si falta, Sequence, y ajusta Timestamp para que no retroceda.
	Create(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id string) (*entity.StockTransaction, error)
	List(ctx context.Context) ([]*entity.StockTransaction, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockTransaction, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.StockTransaction, error)
}
