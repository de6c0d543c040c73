package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// "dimensions" matches the label format "WxH" with numeric components.
	// The pricing routine re-parses authoritatively; the tag just lets
	// request structs declare the field shape.
	validate.RegisterValidation("dimensions", func(fl validator.FieldLevel) bool {
		parts := strings.Split(fl.Field().String(), "x")
		if len(parts) != 2 {
			return false
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return false
			}
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return false
			}
		}
		return true
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
