package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost implementa el costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stockQty int, currentCost decimal.Decimal, inQty int, inCost decimal.Decimal) decimal.Decimal {
	sum := stockQty + inQty
	if sum <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(int64(stockQty)).Mul(currentCost).
		Add(decimal.NewFromInt(int64(inQty)).Mul(inCost))
	return num.Div(decimal.NewFromInt(int64(sum)))
}
