package dto

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=64"`
	Password      string  `json:"password" binding:"required,min=8"`
	WalletAddress *string `json:"walletAddress" binding:"omitempty,min=1"`
}

// UserResponse defines the data returned for a user. The password hash is never exposed.
type UserResponse struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	WalletAddress *string `json:"walletAddress"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
	}
}

// LoginRequest represents the credentials for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
