package domain

import (
	stderrors "errors"

	"estate-hub/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

// LoginCredentials, RegisterData and AuthResponse are the shapes exchanged
// by the sign-in flow. Password hashing and token signing live elsewhere.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c LoginCredentials) Validate() error {
	return checkStruct(c)
}

func (LoginCredentials) wireFields() []field {
	return keys("email", "password")
}

type RegisterData struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	Phone     string   `json:"phone" validate:"required,e164"`
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	UserType  UserType `json:"userType" validate:"enum"`
}

func (r RegisterData) Validate() error {
	return checkStruct(r)
}

func (RegisterData) wireFields() []field {
	return keys("email", "password", "phone", "firstName", "lastName", "userType")
}

type AuthResponse struct {
	User  User   `json:"user" validate:"-"`
	Token string `json:"token" validate:"required"`
}

func (a AuthResponse) Validate() error {
	if err := a.User.Validate(); err != nil {
		return within(err, "user")
	}
	if err := checkStruct(a); err != nil {
		return err
	}
	// Only the shape is checked: the signing key belongs to the auth service.
	if _, _, err := jwt.NewParser().ParseUnverified(a.Token, jwt.MapClaims{}); err != nil {
		return errors.NewValidationError("token", "must be a well-formed JWT")
	}
	return nil
}

func (AuthResponse) wireFields() []field {
	return []field{req("user", userFields()...), req("token")}
}

// ErrorState is the client-side rendering of a failed request.
type ErrorState struct {
	Message string         `json:"message" validate:"required"`
	Code    *string        `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func (e ErrorState) Validate() error {
	return checkStruct(e)
}

func (ErrorState) wireFields() []field {
	return []field{req("message"), opt("code"), opt("details")}
}

// ErrorStateOf converts a failure into its client representation, keeping
// the structured parts of domain errors in Details.
func ErrorStateOf(err error) ErrorState {
	state := ErrorState{Message: err.Error()}
	var (
		validationErr *errors.ValidationError
		parseErr      *errors.ParseError
		transitionErr *errors.InvalidTransition
	)
	switch {
	case stderrors.As(err, &validationErr):
		state.Code = lo.ToPtr("VALIDATION_ERROR")
		state.Details = map[string]any{"field": validationErr.Field, "reason": validationErr.Reason}
	case stderrors.As(err, &parseErr):
		state.Code = lo.ToPtr("PARSE_ERROR")
		state.Details = map[string]any{"position": parseErr.Position, "reason": parseErr.Reason}
	case stderrors.As(err, &transitionErr):
		state.Code = lo.ToPtr("INVALID_TRANSITION")
		state.Details = map[string]any{"from": transitionErr.From, "to": transitionErr.To}
	}
	return state
}
