package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	invdomain "github.com/jhoicas/inventario-pyme/internal/domain/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// RecordTransactionUseCase registra movimientos de stock de forma transaccional:
// el alta del movimiento y el ajuste de Product.Quantity ocurren juntos o no ocurren,
// con la fila del producto bloqueada (GetForUpdate) durante el read-modify-write.
type RecordTransactionUseCase struct {
	txRunner TxRunner
	txRepo   repository.StockTransactionRepository
	enricher *Enricher
	notifier StockNotifier
	log      zerolog.Logger
	now      func() time.Time
}

// NewRecordTransactionUseCase construye el caso de uso. notifier puede ser nil.
func NewRecordTransactionUseCase(
	txRunner TxRunner,
	txRepo repository.StockTransactionRepository,
	enricher *Enricher,
	notifier StockNotifier,
	log zerolog.Logger,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		txRunner: txRunner,
		txRepo:   txRepo,
		enricher: enricher,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// TransactionInput entrada del motor de movimientos.
type TransactionInput struct {
	ProductID  string
	Type       entity.TransactionType
	Reason     entity.TransactionReason
	Quantity   int
	UnitPrice  *decimal.Decimal
	TotalValue *decimal.Decimal // si falta y hay UnitPrice: Quantity × UnitPrice
	SupplierID *string
	CustomerID *string
	Notes      *string
}

// Validate reglas de dominio del movimiento; devuelve *domain.ValidationError o nil.
func (in TransactionInput) Validate() error {
	verr := domain.NewValidationError()
	if in.ProductID == "" {
		verr.Add("product_id", "required", "")
	}
	switch {
	case !in.Type.Valid():
		verr.Add("type", "oneof", "in out")
	case !in.Type.Allows(in.Reason):
		verr.Add("reason", "oneof", joinReasons(entity.ReasonsFor(in.Type)))
	}
	if in.Quantity <= 0 {
		verr.Add("quantity", "gt", "0")
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		verr.Add("unit_price", "gte", "0")
	}
	if in.TotalValue != nil && in.TotalValue.IsNegative() {
		verr.Add("total_value", "gte", "0")
	}
	if in.UnitPrice != nil && !entity.ValidMoney(*in.UnitPrice) {
		verr.Add("unit_price", "scale", strconv.Itoa(entity.MoneyScale))
	}
	if in.TotalValue != nil && !entity.ValidMoney(*in.TotalValue) {
		verr.Add("total_value", "scale", strconv.Itoa(entity.MoneyScale))
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func joinReasons(rs []entity.TransactionReason) string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = string(r)
	}
	return strings.Join(names, " ")
}

// Record valida, y dentro de una transacción: bloquea el producto, persiste el
// movimiento y ajusta la cantidad (+q entrada, −q salida, nunca por debajo de 0).
// Sin motivo se registra como adjustment. Producto inexistente ->
// domain.ErrProductReference sin efectos.
func (uc *RecordTransactionUseCase) Record(ctx context.Context, in TransactionInput) (*entity.StockTransaction, error) {
	if in.Reason == "" {
		in.Reason = entity.ReasonAdjustment
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx := &entity.StockTransaction{
		ProductID:  in.ProductID,
		Type:       in.Type,
		Reason:     in.Reason,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalValue: in.TotalValue,
		SupplierID: in.SupplierID,
		CustomerID: in.CustomerID,
		Notes:      in.Notes,
		Timestamp:  uc.now().UTC(),
	}
	if tx.TotalValue == nil && tx.UnitPrice != nil {
		total := tx.UnitPrice.Mul(decimal.NewFromInt(int64(tx.Quantity)))
		tx.TotalValue = &total
	}

	var evt StockEvent
	var clamped bool
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductReference
		}

		var next int
		next, clamped = invdomain.ApplyDelta(product.Quantity, in.Type, in.Quantity)
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err := productRepo.SetQuantity(ctx, product.ID, next); err != nil {
			return err
		}

		applied := next - product.Quantity
		if applied < 0 {
			applied = -applied
		}
		evt = StockEvent{
			TransactionID:     tx.ID,
			ProductID:         product.ID,
			ProductName:       product.Name,
			Type:              tx.Type,
			Reason:            tx.Reason,
			RequestedQuantity: tx.Quantity,
			AppliedQuantity:   applied,
			PreviousQuantity:  product.Quantity,
			NewQuantity:       next,
			StockStatus:       invdomain.Classify(next, product.ReorderLevel),
			Timestamp:         tx.Timestamp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if clamped {
		uc.log.Warn().
			Str("product_id", evt.ProductID).
			Str("transaction_id", evt.TransactionID).
			Int("requested", evt.RequestedQuantity).
			Int("applied", evt.AppliedQuantity).
			Msg("salida mayor al stock disponible, cantidad recortada a 0")
	}
	if uc.notifier != nil {
		uc.notifier.StockChanged(ctx, evt)
	}
	return tx, nil
}

// RecordFromRequest adapta el request HTTP al motor de movimientos.
func (uc *RecordTransactionUseCase) RecordFromRequest(ctx context.Context, in dto.CreateStockTransactionRequest) (*dto.StockTransactionResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	tx, err := uc.Record(ctx, TransactionInput{
		ProductID:  in.ProductID,
		Type:       entity.TransactionType(in.Type),
		Reason:     entity.TransactionReason(in.Reason),
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalValue: in.TotalValue,
		SupplierID: in.SupplierID,
		CustomerID: in.CustomerID,
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}
	resp := dto.NewStockTransactionResponse(tx)
	return &resp, nil
}

// Get obtiene un movimiento enriquecido; nil si no existe.
func (uc *RecordTransactionUseCase) Get(ctx context.Context, id string) (*entity.StockTransactionWithDetails, error) {
	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil || tx == nil {
		return nil, err
	}
	list, err := uc.enricher.Enrich(ctx, []*entity.StockTransaction{tx})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// List todos los movimientos enriquecidos, del más reciente al más antiguo.
func (uc *RecordTransactionUseCase) List(ctx context.Context) ([]entity.StockTransactionWithDetails, error) {
	txs, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.enricher.Enrich(ctx, txs)
}

// ListByProduct movimientos de un producto, enriquecidos. Vacío si el producto no existe.
func (uc *RecordTransactionUseCase) ListByProduct(ctx context.Context, productID string) ([]entity.StockTransactionWithDetails, error) {
	txs, err := uc.txRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.enricher.Enrich(ctx, txs)
}
