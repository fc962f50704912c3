package http

import (
	"gopkg.in/go-playground/validator.v9"
)

// CustomValidator plugs go-playground validation into echo's Context.Validate.
type CustomValidator struct {
	Validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{Validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}
