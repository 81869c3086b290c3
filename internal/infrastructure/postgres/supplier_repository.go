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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

var supplierColumns = []string{"id", "name", "email", "phone", "address", "is_active"}

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	query := `
		INSERT INTO suppliers (id, name, email, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	sql, args, err := psql.Select(supplierColumns...).From("suppliers").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get supplier: %w", err)
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update fusiona el patch; nil si el proveedor no existe.
func (r *SupplierRepo) Update(ctx context.Context, id string, p entity.ContactPatch) (*entity.Supplier, error) {
	q, ok := contactUpdateQuery("suppliers", id, p, supplierColumns, true)
	if !ok {
		return r.GetByID(ctx, id)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update supplier: %w", err)
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return s, nil
}

// Delete elimina un proveedor por ID. Devuelve false si no existía.
func (r *SupplierRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista proveedores en orden de alta.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	sql, args, err := psql.Select(supplierColumns...).From("suppliers").OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list suppliers: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
