package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	invdomain "github.com/jhoicas/inventario-pyme/internal/domain/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// ventana de ventas usada para priorizar la reposición
const replenishmentSalesWindow = 90 * 24 * time.Hour

// ReplenishmentUseCase genera la lista de reposición: productos en o bajo su punto
// de reorden con la cantidad sugerida y una prioridad basada en ventas recientes.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.StockTransactionRepository
	now         func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, txRepo: txRepo, now: time.Now}
}

// GenerateReplenishmentList devuelve las sugerencias ordenadas por prioridad
// (1 = más urgente): primero más unidades vendidas en 90 días, luego mayor déficit.
// Stock ideal = 1.5 × reorder_level (redondeado hacia arriba).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*entity.Product, 0)
	for _, p := range products {
		if invdomain.NeedsReorder(p.Quantity, p.ReorderLevel) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	txs, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	since := uc.now().Add(-replenishmentSalesWindow)
	sold := map[string]int{}
	avgCost := map[string]decimal.Decimal{}
	purchased := map[string]int{}
	// txs viene del más reciente al más antiguo; el costo promedio se acumula en orden cronológico.
	for i := len(txs) - 1; i >= 0; i-- {
		t := txs[i]
		if t.Type == entity.TransactionOut && t.Reason == entity.ReasonSale && !t.Timestamp.Before(since) {
			sold[t.ProductID] += t.Quantity
		}
		if t.Type == entity.TransactionIn && t.Reason == entity.ReasonPurchase && t.UnitPrice != nil {
			avgCost[t.ProductID] = invdomain.WeightedAverageCost(
				purchased[t.ProductID], avgCost[t.ProductID], t.Quantity, *t.UnitPrice)
			purchased[t.ProductID] += t.Quantity
		}
	}

	onePointFive := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(candidates))
	for _, p := range candidates {
		ideal := int(decimal.NewFromInt(int64(p.ReorderLevel)).Mul(onePointFive).Ceil().IntPart())
		suggested := ideal - p.Quantity
		if suggested < 0 {
			suggested = 0
		}
		unitCost, ok := avgCost[p.ID]
		if !ok {
			unitCost = p.Price
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:           p.ID,
			SKU:                 p.SKU,
			ProductName:         p.Name,
			Category:            p.Category,
			CurrentStock:        p.Quantity,
			ReorderLevel:        p.ReorderLevel,
			IdealStock:          ideal,
			SuggestedOrderQty:   suggested,
			UnitCost:            unitCost,
			EstimatedOrderCost:  unitCost.Mul(decimal.NewFromInt(int64(suggested))),
			UnitsSoldLast90Days: sold[p.ID],
			StockStatus:         invdomain.Classify(p.Quantity, p.ReorderLevel),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsSoldLast90Days != b.UnitsSoldLast90Days {
			return a.UnitsSoldLast90Days > b.UnitsSoldLast90Days
		}
		return a.ReorderLevel-a.CurrentStock > b.ReorderLevel-b.CurrentStock
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
