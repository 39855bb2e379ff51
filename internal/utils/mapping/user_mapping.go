package mapping

import (
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:            d.ID,
		Username:      d.Username,
		PasswordHash:  d.PasswordHash,
		WalletAddress: d.WalletAddress,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		WalletAddress: m.WalletAddress,
		CreatedAt:     m.CreatedAt,
	}
}
