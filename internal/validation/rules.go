// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/resourceapi/internal/errors"
)

var (
	// usernameRegex allows letters, digits and the separators . _ - @
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._@\-]+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput, keeping the
// validation text as the client-facing message.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// Username validates the characters allowed in a login name.
var Username = validation.NewStringRuleWithError(
	func(s string) bool {
		return usernameRegex.MatchString(s)
	},
	validation.NewError("validation_username", "must contain only letters, digits, '.', '_', '-' or '@'"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
