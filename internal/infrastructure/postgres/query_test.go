package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/patch"
)

func TestProductUpdateQuery(t *testing.T) {
	tests := []struct {
		name     string
		patch    entity.ProductPatch
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "nombre y descripción limpiada",
			patch:    entity.ProductPatch{Name: patch.Value("Hinges"), Description: patch.Null[string]()},
			wantSQL:  "UPDATE products SET description = $1, name = $2, updated_at = now() WHERE id = $3 RETURNING id, sku, name, category, price, quantity, reorder_level, description",
			wantArgs: []any{(*string)(nil), "Hinges", "p1"},
		},
		{
			name:     "precio y umbral",
			patch:    entity.ProductPatch{Price: patch.Value(decimal.NewFromInt(60)), ReorderLevel: patch.Value(3)},
			wantSQL:  "UPDATE products SET price = $1, reorder_level = $2, updated_at = now() WHERE id = $3 RETURNING id, sku, name, category, price, quantity, reorder_level, description",
			wantArgs: []any{decimal.NewFromInt(60), 3, "p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := productUpdateQuery("p1", tt.patch)
			require.True(t, ok)
			sql, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestProductUpdateQuery_SinCambios(t *testing.T) {
	_, ok := productUpdateQuery("p1", entity.ProductPatch{})
	assert.False(t, ok)

	// null en campos obligatorios no genera SET
	_, ok = productUpdateQuery("p1", entity.ProductPatch{Name: patch.Null[string]()})
	assert.False(t, ok)
}

func TestProductSearchQuery(t *testing.T) {
	sql, args, err := productSearchQuery("50%_off").ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, sku, name, category, price, quantity, reorder_level, description FROM products WHERE (name ILIKE $1 OR sku ILIKE $2 OR category ILIKE $3) ORDER BY seq",
		sql)
	pattern := `%50\%\_off%`
	assert.Equal(t, []any{pattern, pattern, pattern}, args)
}

func TestContactUpdateQuery(t *testing.T) {
	p := entity.ContactPatch{Email: patch.Null[string](), IsActive: patch.Value(false)}

	q, ok := contactUpdateQuery("suppliers", "s1", p, supplierColumns, true)
	require.True(t, ok)
	sql, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE suppliers SET email = $1, is_active = $2 WHERE id = $3 RETURNING id, name, email, phone, address, is_active", sql)
	assert.Equal(t, []any{(*string)(nil), false, "s1"}, args)

	// clientes no tienen is_active
	q, ok = contactUpdateQuery("customers", "c1", p, customerColumns, false)
	require.True(t, ok)
	sql, _, err = q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE customers SET email = $1 WHERE id = $2 RETURNING id, name, email, phone, address", sql)
}

func TestSelectStockTransactions_Orden(t *testing.T) {
	sql, args, err := selectStockTransactions().Where("product_id = ?", "p1").Limit(5).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, product_id, type, reason, quantity, unit_price, total_value, supplier_id, customer_id, notes, ts, seq FROM stock_transactions WHERE product_id = $1 ORDER BY ts DESC, seq DESC LIMIT 5",
		sql)
	assert.Equal(t, []any{"p1"}, args)
}

func TestMigrationsEmbebidas(t *testing.T) {
	script, err := migrationsFS.ReadFile("migrations/001_schema.sql")
	require.NoError(t, err)
	assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS stock_transactions")
}
