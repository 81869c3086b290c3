package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación en memoria de StockTransactionRepository.
type StockTransactionRepo struct {
	acc accessor
}

// Create persiste el movimiento asignando Sequence; el Timestamp nunca queda
// por detrás del último registrado.
func (r *StockTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	return r.acc.update(func(st *state) error {
		if tx.ID == "" {
			tx.ID = uuid.New().String()
		}
		if _, ok := st.transactions[tx.ID]; ok {
			return domain.ErrDuplicate
		}
		if tx.Timestamp.Before(st.lastTimestamp) {
			tx.Timestamp = st.lastTimestamp
		}
		st.lastTimestamp = tx.Timestamp
		st.sequence++
		tx.Sequence = st.sequence
		st.transactions[tx.ID] = tx.Clone()
		return nil
	})
}

// GetByID obtiene un movimiento por ID.
func (r *StockTransactionRepo) GetByID(_ context.Context, id string) (*entity.StockTransaction, error) {
	var out *entity.StockTransaction
	r.acc.view(func(st *state) { out = st.transactions[id].Clone() })
	return out, nil
}

// List devuelve todos los movimientos, del más reciente al más antiguo.
func (r *StockTransactionRepo) List(_ context.Context) ([]*entity.StockTransaction, error) {
	return r.collect(func(*entity.StockTransaction) bool { return true }, 0), nil
}

// ListByProduct devuelve los movimientos de un producto, del más reciente al más antiguo.
func (r *StockTransactionRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockTransaction, error) {
	return r.collect(func(t *entity.StockTransaction) bool { return t.ProductID == productID }, 0), nil
}

// ListRecent devuelve los últimos limit movimientos.
func (r *StockTransactionRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockTransaction, error) {
	return r.collect(func(*entity.StockTransaction) bool { return true }, limit), nil
}

func (r *StockTransactionRepo) collect(keep func(*entity.StockTransaction) bool, limit int) []*entity.StockTransaction {
	out := []*entity.StockTransaction{}
	r.acc.view(func(st *state) {
		for _, t := range st.transactions {
			if keep(t) {
				out = append(out, t.Clone())
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Newer(out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
