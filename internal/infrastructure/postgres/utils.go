package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón LIKE de "contiene", escapando comodines del usuario.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
