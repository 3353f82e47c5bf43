// Package pkgvalidator validates request structs with go-playground/validator
// and reports failures as pkgerror.ValidationError.
package pkgvalidator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

// Validator checks struct tags and converts failures into field errors named
// after the JSON field.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that names fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate returns nil when s is valid, a *pkgerror.ValidationError when a
// rule fails, or the validator's own error when s cannot be validated.
func (vd *Validator) Validate(s any) error {
	err := vd.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("pkgvalidator: %w", err)
	}

	fields := make([]pkgerror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, pkgerror.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return pkgerror.NewValidation(fields...)
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " must not be blank"
	case "email":
		return field + " must be a well-formed email address"
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s length must be at most %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s length must be at least %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
