package dto

import (
	"time"

	"fabrica/internal/domain/auth"
)

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts the DTO to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Username: r.Username, Password: r.Password}
}

// RegisterUserRequest is the request body for user registration.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// ToRegisterRequest converts the DTO to a domain request.
func (r *RegisterUserRequest) ToRegisterRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// RefreshTokenRequest is the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// SetRoleRequest is the request body for changing a user's role.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// TokenResponse is the response body for login and refresh.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	TokenType    string        `json:"tokenType"`
	User         *UserResponse `json:"user,omitempty"`
}

// FromTokenPair creates a token response from a domain token pair.
func FromTokenPair(pair *auth.TokenPair, user *auth.User) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		TokenType:    pair.TokenType,
	}
	if user != nil {
		resp.User = FromUser(user)
	}
	return resp
}

// UserResponse is the response body for a user.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FromUser creates a response DTO from a domain user.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions(),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
