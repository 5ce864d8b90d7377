package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// hook. Validation failures become 400s whose message names the failing
// request field.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// report the first failing field; one error at a time matches the
	// fixed {error: message} envelope
	return echo.NewHTTPError(http.StatusBadRequest, messageFor(fieldErrs[0]))
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing required field: %s", field)
	case "email":
		return fmt.Sprintf("invalid email address in field: %s", field)
	case "oneof":
		return fmt.Sprintf("unknown value in field: %s", field)
	default:
		return fmt.Sprintf("invalid value in field: %s", field)
	}
}
