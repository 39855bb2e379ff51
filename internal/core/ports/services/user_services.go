package services

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// AuthSvc verifies credentials and issues access tokens.
type AuthSvc interface {
	// Authenticate returns a signed token for valid credentials or apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}
