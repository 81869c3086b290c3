package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{"id", "sku", "name", "category", "price", "quantity", "reorder_level", "description"}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.ReorderLevel, &p.Description); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. SKU repetido -> domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, sku, name, category, price, quantity, reorder_level, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Category, product.Price,
		product.Quantity, product.ReorderLevel, product.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(ctx context.Context, op string, q squirrel.SelectBuilder) (*entity.Product, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	p, err := scanProduct(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func selectProducts() squirrel.SelectBuilder {
	return psql.Select(productColumns...).From("products")
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product", selectProducts().Where(squirrel.Eq{"id": id}))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by sku", selectProducts().Where(squirrel.Eq{"sku": sku}))
}

// GetForUpdate obtiene el producto y bloquea la fila hasta el fin de la tx (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product for update", selectProducts().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"))
}

// productPatchClauses columnas a actualizar según el patch. Null en campos obligatorios se ignora.
func productPatchClauses(p entity.ProductPatch) map[string]any {
	set := map[string]any{}
	if p.SKU.HasValue() {
		set["sku"] = p.SKU.Value
	}
	if p.Name.HasValue() {
		set["name"] = p.Name.Value
	}
	if p.Category.HasValue() {
		set["category"] = p.Category.Value
	}
	if p.Price.HasValue() {
		set["price"] = p.Price.Value
	}
	if p.ReorderLevel.HasValue() {
		set["reorder_level"] = p.ReorderLevel.Value
	}
	if p.Description.Set {
		set["description"] = p.Description.Ptr()
	}
	return set
}

func productUpdateQuery(id string, p entity.ProductPatch) (squirrel.UpdateBuilder, bool) {
	clauses := productPatchClauses(p)
	if len(clauses) == 0 {
		return squirrel.UpdateBuilder{}, false
	}
	clauses["updated_at"] = squirrel.Expr("now()")
	return psql.Update("products").
		SetMap(clauses).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(productColumns)), true
}

// Update fusiona el patch y devuelve el producto resultante; nil si no existe.
// No modifica quantity (se maneja vía movimientos).
func (r *ProductRepo) Update(ctx context.Context, id string, p entity.ProductPatch) (*entity.Product, error) {
	q, ok := productUpdateQuery(id, p)
	if !ok {
		return r.GetByID(ctx, id)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update product: %w", err)
	}
	updated, err := scanProduct(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// SetQuantity fija el stock del producto (usado por el motor de movimientos).
func (r *ProductRepo) SetQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista el catálogo en orden de alta.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, "list products", selectProducts().OrderBy("seq"))
}

func productSearchQuery(query string) squirrel.SelectBuilder {
	pattern := containsPattern(query)
	return selectProducts().
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"sku": pattern},
			squirrel.ILike{"category": pattern},
		}).
		OrderBy("seq")
}

// Search coincidencia parcial (ILIKE) en nombre, SKU o categoría.
func (r *ProductRepo) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	return r.list(ctx, "search products", productSearchQuery(query))
}

func (r *ProductRepo) list(ctx context.Context, op string, q squirrel.SelectBuilder) ([]*entity.Product, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
