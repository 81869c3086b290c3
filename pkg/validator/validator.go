// Package validator envuelve go-playground/validator para las entradas de la API.
// Los errores se devuelven como validator.ValidationErrors; cada capa los traduce
// a su propio formato.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationErrors alias para que los llamadores no importen go-playground.
type ValidationErrors = validator.ValidationErrors

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// decimal.Decimal se valida como número (gte, gt, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Struct valida s según sus tags `validate`. Un error de reglas es ValidationErrors.
func Struct(s any) error {
	return validate.Struct(s)
}

// Var valida un valor suelto con una regla (p. ej. "required").
func Var(value any, tag string) error {
	return validate.Var(value, tag)
}
