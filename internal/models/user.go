package models

import "time"

// User is a row of the users table.
type User struct {
	ID            int64     `db:"id"`
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	WalletAddress *string   `db:"wallet_address"` // Unique when set
	CreatedAt     time.Time `db:"created_at"`
}
