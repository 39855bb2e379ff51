package pgsql

import (
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		LiquidityRepo:    newPgxLiquidityRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
