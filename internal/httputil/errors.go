package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	}
}

// decimalValue lets "required" reject amounts missing from the body.
// An explicit zero is a value.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok || d == (decimal.Decimal{}) {
		return nil
	}

	return d.String()
}

var (
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
	ErrInvalidUUID        = errors.New("the specified resource ID is not a valid UUID")
)

// ValidationError is returned when request parameters fail
// the validation defined in their binding tags.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

// asValidationError converts validator errors into a ValidationError.
func asValidationError(err error) (ValidationError, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ValidationError{}, false
	}

	e := ValidationError{Fields: make([]string, 0, len(errs))}
	for _, fe := range errs {
		e.Fields = append(e.Fields, ValidationErrorToText(fe))
	}

	return e, true
}

// ValidationErrorToText returns a human readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	}

	return fmt.Sprintf("%s is not valid", e.Field())
}
