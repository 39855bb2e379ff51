package services

import (
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/platform/config"
)

// NewServiceContainer wires every service over the given repositories.
// Submitted transactions are handed to settler for resolution.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, settler SettlementScheduler) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	return &portssvc.ServiceContainer{
		Currency:     currencySvc,
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, currencySvc),
		Quote:        NewQuoteService(currencySvc, repos.ExchangeRateRepo),
		Transaction:  NewTransactionService(repos, settler),
		Liquidity:    NewLiquidityService(repos.LiquidityRepo, repos.CurrencyRepo),
		User:         NewUserService(repos.UserRepo, cfg),
	}
}
