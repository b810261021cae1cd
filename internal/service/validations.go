package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return false
			}
			for i, char := range value {
				// Must start with a letter or digit
				if i == 0 && (char == '-' || char == '_') {
					return false
				}
				// Lowercase letters, digits, hyphen or underscore
				if !(char >= 'a' && char <= 'z') && !(char >= '0' && char <= '9') && char != '-' && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct runs the validator and folds field errors into one
// ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
		}
		return errorvalues.Validation(strings.Join(fields, ", "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errorvalues.Validation("userId is required")
	}
	return nil
}

// passStorageErr keeps sentinel errors intact and adds context to the rest.
func passStorageErr(err error, context string) error {
	switch {
	case errors.Is(err, errorvalues.ErrNotFound),
		errors.Is(err, errorvalues.ErrConflict),
		errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrStorageDegraded):
		return err
	}
	return errors.New(context + ": " + err.Error())
}
