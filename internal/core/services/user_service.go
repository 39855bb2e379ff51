package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/platform/config"
	"github.com/SscSPs/parachain_remit/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	var wallet *string
	if req.WalletAddress != nil {
		if w := strings.TrimSpace(*req.WalletAddress); w != "" {
			wallet = &w
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.CreateUser(ctx, domain.User{
		Username:      username,
		PasswordHash:  hash,
		WalletAddress: wallet,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create user", slog.String("username", username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.Int64("user_id", created.ID))
	return created, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

func (s *userService) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, fmt.Errorf("%w: wallet address is required", apperrors.ErrValidation)
	}
	return s.userRepo.FindUserByWalletAddress(ctx, walletAddress)
}

// Authenticate checks the password against the stored bcrypt hash and issues
// a JWT whose subject is the user id. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.Int64("user_id", user.ID))
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
