// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates an administrator password before it is used to wrap a
// master key.
type PasswordStrength struct {
	MinLength     int
	RequireLetter bool
	RequireNumber bool
}

// AdminPassword is the policy applied to new admin passwords.
var AdminPassword = PasswordStrength{MinLength: 12, RequireLetter: true, RequireNumber: false}

// Validate checks if the password meets the configured requirements
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len([]rune(s)) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}

	if p.RequireLetter && !strings.ContainsFunc(s, unicode.IsLetter) {
		return validation.NewError("validation_password_letter", "password must contain at least one letter")
	}

	if p.RequireNumber && !strings.ContainsFunc(s, unicode.IsDigit) {
		return validation.NewError("validation_password_number", "password must contain at least one number")
	}

	return nil
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NotNilUUID rejects the nil UUID, which Required accepts because uuid.UUID is an array.
var NotNilUUID = validation.By(func(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok {
		return validation.NewError("validation_uuid", "must be a uuid")
	}
	if id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
})

// OneOf validates that a string is one of the allowed values.
func OneOf(values ...string) validation.Rule {
	allowed := make([]interface{}, len(values))
	for i, v := range values {
		allowed[i] = v
	}
	return validation.In(allowed...).Error("must be one of: " + strings.Join(values, ", "))
}
