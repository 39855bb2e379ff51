package repositories

import (
	"context"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByWalletAddress retrieves the user bound to a wallet address.
	FindUserByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser persists a new user. It returns apperrors.ErrDuplicate if the username is taken.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
