package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-pyme/internal/domain/inventory"
)

func TestWeightedAverageCost(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		stock   int
		current decimal.Decimal
		inQty   int
		inCost  decimal.Decimal
		want    decimal.Decimal
	}{
		{"sin stock previo", 0, decimal.Zero, 4, d("12.5"), d("12.5")},
		{"mezcla", 1, d("35.5"), 3, d("39.5"), d("38.5")},
		{"mismo costo", 10, d("2"), 10, d("2"), d("2")},
		{"nada que promediar", 0, d("5"), 0, d("7"), decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.WeightedAverageCost(tt.stock, tt.current, tt.inQty, tt.inCost)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
