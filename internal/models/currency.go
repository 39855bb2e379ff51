package models

// Currency is a row of the currencies table.
type Currency struct {
	ID            int64  `db:"id"`
	Code          string `db:"code"` // Unique (e.g., "USD")
	Name          string `db:"name"`
	Symbol        string `db:"symbol"`
	ParachainName string `db:"parachain_name"`
	ParachainID   string `db:"parachain_id"`
}
