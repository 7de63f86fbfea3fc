package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator. Safe to call more than once.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("policy", validatePolicy)
		_ = v.RegisterValidation("artifact", validateArtifact)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// Keys are lower-cased field names so internal struct names never leak.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "policy":
			errs[field] = "Must be rational or risk_taking"
		case "artifact":
			errs[field] = "Must be an artifact such as EnergyCrystal:POWER=5"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "nefield":
			errs[field] = fmt.Sprintf("Must differ from %s", strings.ToLower(e.Param()))
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validatePolicy accepts any spelling domain.ParsePolicy understands
func validatePolicy(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if value == "" {
		return true
	}
	_, err := domain.ParsePolicy(value)
	return err == nil
}

// validateArtifact accepts artifact log text that parses
func validateArtifact(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := codec.ParseArtifact(value)
	return err == nil
}
