package validator

import (
	"regexp"
	"time"

	val "github.com/go-playground/validator/v10"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

var validate *val.Validate

// phonePattern accepts digits with optional leading +, separators and
// parentheses, e.g. "+62 812-3456-7890" or "(021) 555 0123".
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,18}[0-9]$`)

func registerDateOnlyValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateFormat, value)

	return err == nil
}

func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return phonePattern.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("dateonly", registerDateOnlyValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("phone", registerPhoneValidation); err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules a
// failure.Validation error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(msg) //nolint:wrapcheck
	}

	return nil
}
