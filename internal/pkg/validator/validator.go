// Package validator wraps go-playground struct validation for request DTOs.
// Handlers validate bound JSON bodies here before touching the service layer.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct's validate tags. Returns nil when everything
// passes, otherwise a field -> failed-tag map.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
