package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/budget-zero/backend/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use the JSON names in error messages
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(types.Date); ok {
			return d.Time
		}
		return nil
	}, types.Date{})

	_ = v.RegisterValidation("transaction_type", func(fl validator.FieldLevel) bool {
		return TransactionType(fl.Field().String()).Valid()
	})

	return v
}

// validationText turns validator errors into a single readable message.
func validationText(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must not be negative", e.Field()))
		case "transaction_type":
			messages = append(messages, fmt.Sprintf("%s must be %s or %s", e.Field(), Income, Expense))
		default:
			messages = append(messages, fmt.Sprintf("%s is not valid", e.Field()))
		}
	}

	return strings.Join(messages, ", ")
}
