// Package memory implementa los repositorios sobre mapas en memoria.
// Un único Store agrupa las cuatro colecciones; las escrituras de una transacción
// trabajan sobre una copia del estado que solo se publica si la función termina sin error.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// state las entidades guardadas nunca se modifican en sitio: cada escritura
// reemplaza el puntero, así clone() puede ser una copia superficial.
type state struct {
	products      map[string]*entity.Product
	productOrder  []string
	suppliers     map[string]*entity.Supplier
	supplierOrder []string
	customers     map[string]*entity.Customer
	customerOrder []string
	transactions  map[string]*entity.StockTransaction
	lastTimestamp time.Time
	sequence      int64
}

func newState() *state {
	return &state{
		products:     make(map[string]*entity.Product),
		suppliers:    make(map[string]*entity.Supplier),
		customers:    make(map[string]*entity.Customer),
		transactions: make(map[string]*entity.StockTransaction),
	}
}

func (s *state) clone() *state {
	c := &state{
		products:      make(map[string]*entity.Product, len(s.products)),
		productOrder:  append([]string(nil), s.productOrder...),
		suppliers:     make(map[string]*entity.Supplier, len(s.suppliers)),
		supplierOrder: append([]string(nil), s.supplierOrder...),
		customers:     make(map[string]*entity.Customer, len(s.customers)),
		customerOrder: append([]string(nil), s.customerOrder...),
		transactions:  make(map[string]*entity.StockTransaction, len(s.transactions)),
		lastTimestamp: s.lastTimestamp,
		sequence:      s.sequence,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	return c
}

// accessor abstrae si un repositorio trabaja contra el Store (con bloqueo propio)
// o dentro de una transacción (el bloqueo ya lo tiene Run).
type accessor interface {
	view(fn func(st *state))
	update(fn func(st *state) error) error
}

type storeAccess struct{ s *Store }

func (a storeAccess) view(fn func(st *state)) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	fn(a.s.state)
}

func (a storeAccess) update(fn func(st *state) error) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return fn(a.s.state)
}

type txAccess struct{ st *state }

func (a txAccess) view(fn func(st *state))               { fn(a.st) }
func (a txAccess) update(fn func(st *state) error) error { return fn(a.st) }

// Store almacén en memoria. Un solo escritor a la vez; lectores concurrentes.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Products repositorio de productos ligado al Store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{acc: storeAccess{s}} }

// Suppliers repositorio de proveedores ligado al Store.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{acc: storeAccess{s}} }

// Customers repositorio de clientes ligado al Store.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{acc: storeAccess{s}} }

// Transactions repositorio de movimientos ligado al Store.
func (s *Store) Transactions() *StockTransactionRepo {
	return &StockTransactionRepo{acc: storeAccess{s}}
}

// Run ejecuta fn con el bloqueo de escritura tomado durante toda la función.
// Si fn falla, la copia de trabajo se descarta y el estado visible no cambia.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	acc := txAccess{st: work}
	if err := fn(&ProductRepo{acc: acc}, &StockTransactionRepo{acc: acc}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}
