package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap flattens validator.v10 errors into the field→messages
// shape used by JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required."
		case "email":
			msg = "Invalid email format."
		case "min":
			msg = "Must be at least " + fe.Param() + " characters."
		case "max":
			msg = "Must be at most " + fe.Param() + " characters."
		case "gte":
			msg = "Must be greater than or equal to " + fe.Param() + "."
		case "lte":
			msg = "Must be less than or equal to " + fe.Param() + "."
		case "oneof":
			msg = "Must be one of: " + fe.Param() + "."
		case "datetime":
			msg = "Must be a date in YYYY-MM-DD format."
		default:
			msg = "Invalid value."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
