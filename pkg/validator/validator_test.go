package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string           `json:"name" validate:"required"`
	Quantity  int              `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal  `json:"price" validate:"gte=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Kind      string           `json:"type" validate:"oneof=in out"`
}

func TestStruct_Valido(t *testing.T) {
	up := decimal.RequireFromString("2.50")
	err := Struct(sample{Name: "Hinges", Quantity: 1, Price: decimal.NewFromInt(50), UnitPrice: &up, Kind: "in"})
	assert.NoError(t, err)
}

func TestStruct_DetallePorCampo(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	err := Struct(sample{Quantity: 0, Price: decimal.RequireFromString("-0.01"), UnitPrice: &neg, Kind: "sideways"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"name":      "required",
		"quantity":  "gt",
		"price":     "gte",
		"unitPrice": "gte",
		"type":      "oneof",
	}, fields)
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("door", "required"))
	err := Var("", "required")
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "required", verrs[0].Tag())
}
