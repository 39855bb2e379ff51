package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	"github.com/SscSPs/parachain_remit/internal/models"
	"github.com/SscSPs/parachain_remit/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, password_hash, wallet_address, created_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(&m.ID, &m.Username, &m.PasswordHash, &m.WalletAddress, &m.CreatedAt)
	return m, err
}

// CreateUser inserts a user. Username and wallet address are unique.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, password_hash, wallet_address)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns + `;
	`
	created, err := scanUser(r.Pool.QueryRow(ctx, query, m.Username, m.PasswordHash, m.WalletAddress))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(http.StatusConflict, "username or wallet address already registered", err)
		}
		return nil, apperrors.NewStorageError("failed to insert user", err)
	}

	d := mapping.ToDomainUser(created)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id, fmt.Sprintf("user %d", id))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username, "user "+username)
}

func (r *PgxUserRepository) FindUserByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE wallet_address = $1;`, walletAddress, "wallet "+walletAddress)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any, label string) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(label + " not found")
		}
		return nil, apperrors.NewStorageError("failed to find "+label, err)
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}
