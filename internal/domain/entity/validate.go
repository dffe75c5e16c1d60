package entity

import (
	"reflect"

	domainerrors "agency/internal/domain/errors"
	"agency/internal/errors"

	"github.com/go-playground/validator/v10"
)

const tagPropertyType = "property_type"

var validate = newValidator()

// newValidator builds the validator shared by every constructor in this package.
// Field errors report the `label` tag so messages read "invalid street name: ...".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})

	if err := v.RegisterValidation(tagPropertyType, func(fl validator.FieldLevel) bool {
		return PropertyType(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}

	return v
}

// validateInput runs struct validation and converts the first failure into a
// domain FieldError. A failed `required` rule maps to ErrMissingValue, every
// other rule to ErrInvalidValue.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.Wrap(err, "validate input")
	}

	first := validationErrs[0]
	if first.Tag() == "required" {
		return domainerrors.NewMissingValueError(first.Field())
	}

	return domainerrors.NewInvalidValueError(first.Field(), first.Value())
}
