package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts validator.Validate to the echo.Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func New() *CustomValidator {
	v := validator.New()
	registerNullTypes(v)
	return &CustomValidator{validator: v}
}
