// Package validation checks decoded request bodies against their validate
// struct tags and reports the first failure as a domain validation error.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	s "github.com/be1500616/zergoqrf/pkg/string"
)

const invalidBody = "invalid request body"

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages maps a validator tag to a format taking the field name and the
// tag parameter.
var messages = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
	"email":    "%s must be a valid email",
	"uuid":     "%s must be a valid uuid",
	"uuid4":    "%s must be a valid uuid",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"len":      "%s must be exactly %s characters",
	"oneof":    "%s must be one of [%s]",
	"numeric":  "%s must be numeric",
	"e164":     "%s must be an E.164 phone number",
}

// Validate runs the struct tags on req. The first failing field becomes a
// VALIDATION_ERROR bound to that field.
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.NewField(dErrors.CodeValidation, FieldName(err), ErrorMessage(err))
	}
	return nil
}

func firstFieldError(err error) (validator.FieldError, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil, false
	}
	return fieldErrs[0], true
}

// FieldName is the snake_case name of the first failing field, or "" when err
// is not a validator error.
func FieldName(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return ""
	}
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	return s.ToSnakeCase(name)
}

// ErrorMessage renders the first failing field as a client-facing sentence.
func ErrorMessage(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return invalidBody
	}
	field := FieldName(err)
	if field == "" {
		return invalidBody
	}

	format, known := messages[fe.ActualTag()]
	if !known {
		return field + " is invalid"
	}
	if strings.Count(format, "%s") == 2 {
		return fmt.Sprintf(format, field, fe.Param())
	}
	return fmt.Sprintf(format, field)
}
