package services

import (
	"context"

	"github.com/chat-client/v2/internal/auth"
	"github.com/chat-client/v2/internal/types"
)

// AuthService implements auth.Service against the dj-rest-auth endpoints.
type AuthService struct {
	apiClient    *ApiClient
	loginPath    string
	registerPath string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(apiClient *ApiClient, loginPath, registerPath string) *AuthService {
	return &AuthService{
		apiClient:    apiClient,
		loginPath:    loginPath,
		registerPath: registerPath,
	}
}

// Login posts the credentials. A non-nil error means the server's answer
// never arrived or could not be decoded.
func (s *AuthService) Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResponse, error) {
	payload := types.LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
	}

	var body types.TokenResponse
	status, err := s.apiClient.PostJSON(ctx, s.loginPath, payload, &body)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		StatusCode:     status,
		Key:            body.Key,
		NonFieldErrors: body.NonFieldErrors.String(),
	}, nil
}

// Register posts the registration fields.
func (s *AuthService) Register(ctx context.Context, data auth.RegistrationData) (*auth.RegisterResponse, error) {
	payload := types.RegisterRequest{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
	}

	var body types.TokenResponse
	status, err := s.apiClient.PostJSON(ctx, s.registerPath, payload, &body)
	if err != nil {
		return nil, err
	}

	return &auth.RegisterResponse{StatusCode: status, Key: body.Key}, nil
}
