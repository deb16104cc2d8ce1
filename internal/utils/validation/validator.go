// Package validation configures the struct validator shared by services and handlers.
package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that understands decimal.Decimal fields.
func New() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

// Register adds the decimal support to an existing validator, such as the
// one behind gin's binding.
//
// Decimal fields are presented to rules as their string form, so the standard
// "required" tag still works on them and "dgte=N" compares exactly.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	// The error is only returned for an empty tag name.
	_ = v.RegisterValidation("dgte", decimalGTE)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// decimalGTE implements "dgte=N": the field is a decimal no smaller than N.
func decimalGTE(fl validator.FieldLevel) bool {
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}

	var value decimal.Decimal
	switch f := fl.Field().Interface().(type) {
	case string:
		value, err = decimal.NewFromString(f)
		if err != nil {
			return false
		}
	case decimal.Decimal:
		value = f
	default:
		return false
	}
	return value.GreaterThanOrEqual(bound)
}
