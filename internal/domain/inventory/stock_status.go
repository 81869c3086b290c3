package inventory

import "github.com/jhoicas/inventario-pyme/internal/domain/entity"

// Classify clasifica el stock de un producto. Cantidad 0 es siempre out-of-stock,
// aunque el umbral también sea 0.
func Classify(quantity, reorderLevel int) entity.StockStatus {
	switch {
	case quantity <= 0:
		return entity.StatusOutOfStock
	case quantity <= reorderLevel:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}

// NeedsReorder indica si el producto está en o bajo su punto de reposición.
// Incluye los agotados; es el criterio de la lista de stock bajo y del contador del tablero.
func NeedsReorder(quantity, reorderLevel int) bool {
	return quantity <= reorderLevel
}

// WithStock adjunta el estado de stock a un producto.
func WithStock(p *entity.Product) entity.ProductWithStock {
	return entity.ProductWithStock{
		Product:     *p,
		StockStatus: Classify(p.Quantity, p.ReorderLevel),
	}
}

// ApplyDelta calcula la nueva cantidad tras un movimiento. Las salidas mayores al
// stock se recortan a 0; clamped indica que la cantidad aplicada fue menor a la pedida.
func ApplyDelta(current int, t entity.TransactionType, quantity int) (next int, clamped bool) {
	delta := quantity
	if t == entity.TransactionOut {
		delta = -quantity
	}
	next = current + delta
	if next < 0 {
		return 0, true
	}
	return next, false
}
