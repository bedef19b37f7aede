// Package dto provides data transfer objects for HTTP request handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	customValidation "github.com/allisson/resourceapi/internal/validation"
)

// SignUpRequest contains the parameters for registering a user.
// Bodies may be JSON or form encoded.
type SignUpRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"` //nolint:gosec // plaintext input, hashed before storage
	Role     string `json:"role"     form:"role"`
}

// Validate checks if the signup request is valid.
func (r *SignUpRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Role,
			customValidation.NoWhitespace,
			validation.Length(0, 64),
		),
	)
}

// ToInput maps the request to the use case input.
func (r *SignUpRequest) ToInput() *authDomain.SignUpInput {
	return &authDomain.SignUpInput{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
	}
}

// SetRoleRequest contains the parameters for changing a user's role.
type SetRoleRequest struct {
	Username string `json:"username" form:"username"`
	Role     string `json:"role"     form:"role"`
}

// Validate checks if the set role request is valid.
func (r *SetRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Role,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
	)
}
