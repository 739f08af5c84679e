package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by all request validators.
var Validate = validator.New()

// FieldErrors turns validator errors into the field -> message map returned
// by middleware.ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	errors := make(map[string]string)

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fe.Field())
		case "email":
			errors[field] = "Must be a valid email address!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", fe.Field(), fe.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fe.Field())
		}
	}
	return errors
}
