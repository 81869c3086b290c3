package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

var customerColumns = []string{"id", "name", "email", "phone", "address"}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO customers (id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	sql, args, err := psql.Select(customerColumns...).From("customers").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update fusiona el patch; nil si el cliente no existe.
func (r *CustomerRepo) Update(ctx context.Context, id string, p entity.ContactPatch) (*entity.Customer, error) {
	q, ok := contactUpdateQuery("customers", id, p, customerColumns, false)
	if !ok {
		return r.GetByID(ctx, id)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update customer: %w", err)
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

// Delete elimina un cliente por ID. Devuelve false si no existía.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista clientes en orden de alta.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT id, name, email, phone, address FROM customers ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
