package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("user_id", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return false
			}
			for _, char := range value {
				// Chat platform ids never carry spaces or control chars
				if unicode.IsSpace(char) || unicode.IsControl(char) {
					return false
				}
			}
			return true
		})
	})
}

func validateUserID(userID string) error {
	if err := validate.Var(userID, "user_id,max=64"); err != nil {
		return errors.Join(errorvalues.ErrValidation, errors.New("invalid user id"))
	}
	return nil
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return nil
}
