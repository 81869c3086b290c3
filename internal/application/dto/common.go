package dto

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/pkg/validator"
)

// ErrorResponse cuerpo de error HTTP. Fields solo se informa en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Validate aplica las reglas `validate` de s. Devuelve *domain.ValidationError o nil.
func Validate(s any) error {
	verr, err := collect(s)
	if err != nil {
		return err
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ValidateVar valida un valor suelto y reporta el error bajo field.
func ValidateVar(field string, value any, tag string) error {
	err := validator.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := domain.NewValidationError()
	for _, fe := range verrs {
		out.Add(field, fe.Tag(), fe.Param())
	}
	return out
}

// collect traduce los errores de go-playground al error de dominio (posiblemente vacío).
func collect(s any) (*domain.ValidationError, error) {
	out := domain.NewValidationError()
	err := validator.Struct(s)
	if err == nil {
		return out, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		out.Add(fe.Field(), fe.Tag(), fe.Param())
	}
	return out, nil
}

// checkMoneyScale registra "scale" si el importe tiene más decimales de los admitidos.
func checkMoneyScale(verr *domain.ValidationError, field string, d *decimal.Decimal) {
	if d != nil && !entity.ValidMoney(*d) {
		verr.Add(field, "scale", strconv.Itoa(entity.MoneyScale))
	}
}

// requiredNotNull registra como "required" un campo obligatorio enviado como null o vacío.
func requiredNotNull(verr *domain.ValidationError, field string, set, null, empty bool) {
	if set && (null || empty) {
		verr.Add(field, "required", "")
	}
}
