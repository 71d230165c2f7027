package auth

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Storage key for the issued auth token.
const TokenKey = "token"

// Element ids shared by the front ends.
const (
	LoginFormID       = "login-form"
	RegisterFormID    = "register-form"
	LoginMessageID    = "login-message"
	RegisterMessageID = "register-message"

	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)

// Status texts shown after a submission.
const (
	MsgLoginSuccess    = "Login successful!"
	MsgLoginFailed     = "Login failed!"
	MsgError           = "An error occurred!"
	MsgRegisterSuccess = "Registration successful!"
	MsgRegisterFailed  = "Registration failed!"
)

// Service defines the authentication operations against the backend.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
	Register(ctx context.Context, data RegistrationData) (*RegisterResponse, error)
}

// Credentials contains login request data.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RegistrationData contains registration request data.
type RegistrationData struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

// LoginResponse is the decoded outcome of a login request that reached the server.
type LoginResponse struct {
	StatusCode     int
	Key            string
	NonFieldErrors string
}

// OK reports whether the status code is 2xx.
func (r *LoginResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RegisterResponse is the decoded outcome of a registration request.
type RegisterResponse struct {
	StatusCode int
	Key        string
}

var validatorInstance = validator.New()

// Validate checks the required-field rules a form applies before submitting.
func Validate(v any) error {
	if err := validatorInstance.Struct(v); err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	return nil
}
