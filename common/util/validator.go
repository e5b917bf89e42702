package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldName)
}

// fieldName reports fields by the name clients send: json first, then form
// for multipart payloads, then yaml for config.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "yaml"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors formats validation errors into readable messages.
// A non-nil error always yields at least one message.
func GetValidationErrors(err error) []string {
	var errors []string
	if err == nil {
		return errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(errors, "Invalid request")
	}

	for _, fieldError := range validationErrors {
		unit := "characters"
		switch fieldError.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			unit = "items"
		case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Float64:
			unit = ""
		}

		switch fieldError.Tag() {
		case "required":
			errors = append(errors, fieldError.Field()+" is required")
		case "email":
			errors = append(errors, fieldError.Field()+" must be a valid email")
		case "min":
			errors = append(errors, strings.TrimSpace(fieldError.Field()+" must be at least "+fieldError.Param()+" "+unit))
		case "max":
			errors = append(errors, strings.TrimSpace(fieldError.Field()+" must be at most "+fieldError.Param()+" "+unit))
		default:
			errors = append(errors, fieldError.Field()+" is invalid")
		}
	}
	return errors
}
