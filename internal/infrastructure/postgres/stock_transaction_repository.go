package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

var stockTransactionColumns = []string{
	"id", "product_id", "type", "reason", "quantity", "unit_price", "total_value",
	"supplier_id", "customer_id", "notes", "ts", "seq",
}

// stockTransactionsLockKey serializa las altas para que ts no retroceda respecto a seq.
const stockTransactionsLockKey = 7_310_442

// StockTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

func scanStockTransaction(row pgx.Row) (*entity.StockTransaction, error) {
	var t entity.StockTransaction
	var typ, reason string
	if err := row.Scan(&t.ID, &t.ProductID, &typ, &reason, &t.Quantity, &t.UnitPrice, &t.TotalValue,
		&t.SupplierID, &t.CustomerID, &t.Notes, &t.Timestamp, &t.Sequence); err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(typ)
	t.Reason = entity.TransactionReason(reason)
	t.Timestamp = t.Timestamp.UTC()
	return &t, nil
}

// Create persiste un movimiento. El timestamp se ajusta al último registrado si el
// reloj retrocedió; seq lo asigna la secuencia de la tabla.
// Debe ejecutarse dentro de una transacción (el advisory lock se libera al terminarla).
func (r *StockTransactionRepo) Create(ctx context.Context, tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, stockTransactionsLockKey); err != nil {
		return fmt.Errorf("lock stock transactions: %w", err)
	}
	query := `
		INSERT INTO stock_transactions (id, product_id, type, reason, quantity, unit_price, total_value, supplier_id, customer_id, notes, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			GREATEST($11::timestamptz, COALESCE((SELECT max(ts) FROM stock_transactions), $11::timestamptz)))
		RETURNING ts, seq`
	var ts time.Time
	err := r.q.QueryRow(ctx, query,
		tx.ID, tx.ProductID, string(tx.Type), string(tx.Reason), tx.Quantity, tx.UnitPrice, tx.TotalValue,
		tx.SupplierID, tx.CustomerID, tx.Notes, tx.Timestamp,
	).Scan(&ts, &tx.Sequence)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	tx.Timestamp = ts.UTC()
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockTransactionRepo) GetByID(ctx context.Context, id string) (*entity.StockTransaction, error) {
	sql, args, err := selectStockTransactions().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get stock transaction: %w", err)
	}
	t, err := scanStockTransaction(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return t, nil
}

func selectStockTransactions() squirrel.SelectBuilder {
	return psql.Select(stockTransactionColumns...).
		From("stock_transactions").
		OrderBy("ts DESC", "seq DESC")
}

// List todos los movimientos, del más reciente al más antiguo.
func (r *StockTransactionRepo) List(ctx context.Context) ([]*entity.StockTransaction, error) {
	return r.list(ctx, "list stock transactions", selectStockTransactions())
}

// ListByProduct movimientos de un producto, del más reciente al más antiguo.
func (r *StockTransactionRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockTransaction, error) {
	return r.list(ctx, "list stock transactions by product",
		selectStockTransactions().Where(squirrel.Eq{"product_id": productID}))
}

// ListRecent los últimos limit movimientos.
func (r *StockTransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockTransaction, error) {
	q := selectStockTransactions()
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, "list recent stock transactions", q)
}

func (r *StockTransactionRepo) list(ctx context.Context, op string, q squirrel.SelectBuilder) ([]*entity.StockTransaction, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.StockTransaction, 0)
	for rows.Next() {
		t, err := scanStockTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
