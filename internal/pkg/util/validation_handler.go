package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO checks struct-level validation tags. The raw
// validator.ValidationErrors pass through so the response layer can map
// them to a 400.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
