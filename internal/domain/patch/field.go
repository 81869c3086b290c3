// Package patch modela actualizaciones parciales: distingue un campo ausente,
// un campo enviado explícitamente como null y un campo con valor.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field es un valor opcional de una actualización parcial.
// El valor cero (Set=false) significa "no tocar".
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value construye un campo con valor.
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null construye un campo que limpia el valor actual.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON se invoca solo si la clave viene en el JSON (también con null).
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// HasValue indica que el campo trae un valor no nulo.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// ApplyTo aplica el campo sobre un destino anulable.
func (f Field[T]) ApplyTo(dst **T) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

// ApplyValue aplica el campo sobre un destino obligatorio; null se ignora.
func (f Field[T]) ApplyValue(dst *T) {
	if f.HasValue() {
		*dst = f.Value
	}
}

// Ptr devuelve el valor como puntero (nil si es null o ausente).
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}
