package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType sentido del movimiento de stock.
type TransactionType string

// Tipos de movimiento.
const (
	TransactionIn  TransactionType = "in"  // entrada
	TransactionOut TransactionType = "out" // salida
)

// TransactionReason motivo del movimiento; los válidos dependen del tipo.
type TransactionReason string

// Motivos de movimiento.
const (
	ReasonPurchase   TransactionReason = "purchase"
	ReasonReturn     TransactionReason = "return"
	ReasonSale       TransactionReason = "sale"
	ReasonWastage    TransactionReason = "wastage"
	ReasonAdjustment TransactionReason = "adjustment"
)

var reasonsByType = map[TransactionType][]TransactionReason{
	TransactionIn:  {ReasonPurchase, ReasonReturn, ReasonAdjustment},
	TransactionOut: {ReasonSale, ReasonWastage, ReasonAdjustment},
}

// Valid indica si el tipo es in u out.
func (t TransactionType) Valid() bool {
	_, ok := reasonsByType[t]
	return ok
}

// Allows indica si el motivo es compatible con el tipo.
func (t TransactionType) Allows(r TransactionReason) bool {
	for _, allowed := range reasonsByType[t] {
		if allowed == r {
			return true
		}
	}
	return false
}

// ReasonsFor devuelve los motivos admitidos para un tipo.
func ReasonsFor(t TransactionType) []TransactionReason {
	return append([]TransactionReason(nil), reasonsByType[t]...)
}

// StockTransaction movimiento de stock inmutable. Su efecto sobre Product.Quantity
// se aplica una sola vez, al crearse.
type StockTransaction struct {
	ID         string
	ProductID  string
	Type       TransactionType
	Reason     TransactionReason
	Quantity   int // unidades movidas (> 0)
	UnitPrice  *decimal.Decimal
	TotalValue *decimal.Decimal
	SupplierID *string
	CustomerID *string
	Notes      *string
	Timestamp  time.Time
	Sequence   int64 // orden de inserción; desempate cuando Timestamp coincide
}

// Newer indica si t es más reciente que o (timestamp y luego secuencia).
func (t *StockTransaction) Newer(o *StockTransaction) bool {
	if !t.Timestamp.Equal(o.Timestamp) {
		return t.Timestamp.After(o.Timestamp)
	}
	return t.Sequence > o.Sequence
}

// Clone devuelve una copia independiente.
func (t *StockTransaction) Clone() *StockTransaction {
	if t == nil {
		return nil
	}
	c := *t
	c.UnitPrice = cloneDecimal(t.UnitPrice)
	c.TotalValue = cloneDecimal(t.TotalValue)
	c.SupplierID = cloneString(t.SupplierID)
	c.CustomerID = cloneString(t.CustomerID)
	c.Notes = cloneString(t.Notes)
	return &c
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
