package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
)

// contactUpdateQuery UPDATE dinámico para proveedores y clientes. is_active solo
// se incluye en tablas que lo tienen.
func contactUpdateQuery(table, id string, p entity.ContactPatch, columns []string, withActive bool) (squirrel.UpdateBuilder, bool) {
	set := map[string]any{}
	if p.Name.HasValue() {
		set["name"] = p.Name.Value
	}
	if p.Email.Set {
		set["email"] = p.Email.Ptr()
	}
	if p.Phone.Set {
		set["phone"] = p.Phone.Ptr()
	}
	if p.Address.Set {
		set["address"] = p.Address.Ptr()
	}
	if withActive && p.IsActive.HasValue() {
		set["is_active"] = p.IsActive.Value
	}
	if len(set) == 0 {
		return squirrel.UpdateBuilder{}, false
	}
	return psql.Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(columns)), true
}
