package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrProductReference = errors.New("el producto referenciado no existe")
)

// FieldError detalle de validación para un campo concreto.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError agrupa los campos inválidos de una entrada.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error a partir de una lista de campos.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add agrega un campo inválido.
func (e *ValidationError) Add(field, tag, param string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Tag: tag, Param: param})
}

// HasErrors indica si se registró al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Tag))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
