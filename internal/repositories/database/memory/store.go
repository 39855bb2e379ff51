// Package memory is an in-process implementation of the repository ports. It
// backs service and handler tests and keeps the same error contract as the
// pgsql package.
package memory

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
)

// Store holds every table behind one lock.
type Store struct {
	mu sync.RWMutex

	currencies   map[int64]domain.Currency
	rates        map[[2]int64]domain.ExchangeRate
	transactions map[int64]domain.Transaction
	pools        map[int64]domain.LiquidityPool
	positions    map[int64]domain.LiquidityPosition
	users        map[int64]domain.User

	nextID int64
	now    func() time.Time

	// FailWrites makes every write return a storage error.
	FailWrites bool
}

var (
	_ portsrepo.CurrencyRepositoryFacade     = (*Store)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade  = (*Store)(nil)
	_ portsrepo.LiquidityRepositoryFacade    = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade         = (*Store)(nil)
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		currencies:   make(map[int64]domain.Currency),
		rates:        make(map[[2]int64]domain.ExchangeRate),
		transactions: make(map[int64]domain.Transaction),
		pools:        make(map[int64]domain.LiquidityPool),
		positions:    make(map[int64]domain.LiquidityPosition),
		users:        make(map[int64]domain.User),
		now:          time.Now,
	}
}

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     s,
		ExchangeRateRepo: s,
		TransactionRepo:  s,
		LiquidityRepo:    s,
		UserRepo:         s,
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) checkWrite(op string) error {
	if s.FailWrites {
		return apperrors.NewStorageError("failed to "+op, fmt.Errorf("memory store is read-only"))
	}
	return nil
}

// AddCurrency inserts a currency and returns it with its ID.
func (s *Store) AddCurrency(c domain.Currency) domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.currencies[c.ID] = c
	return c
}

// AddExchangeRate inserts or replaces the rate for (source, target).
func (s *Store) AddExchangeRate(r domain.ExchangeRate) domain.ExchangeRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{r.SourceCurrencyID, r.TargetCurrencyID}
	if existing, ok := s.rates[key]; ok {
		r.ID = existing.ID
	} else {
		r.ID = s.id()
	}
	r.UpdatedAt = s.now()
	s.rates[key] = r
	return r
}

// AddPool inserts a pool and returns it with its ID.
func (s *Store) AddPool(p domain.LiquidityPool) domain.LiquidityPool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.pools[p.ID] = p
	return p
}

// Currencies

func (s *Store) FindCurrencyByID(_ context.Context, id int64) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.currencies[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency with id %d not found", id))
	}
	return &c, nil
}

func (s *Store) FindCurrencyByCode(_ context.Context, code string) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.currencies {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("currency with code " + code + " not found")
}

func (s *Store) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exchange rates

func (s *Store) FindExchangeRate(_ context.Context, sourceCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rates[[2]int64{sourceCurrencyID, targetCurrencyID}]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %d -> %d not found", sourceCurrencyID, targetCurrencyID))
	}
	return &r, nil
}

func (s *Store) ListExchangeRates(_ context.Context) ([]domain.ExchangeRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ExchangeRate, 0, len(s.rates))
	for _, r := range s.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SourceCurrencyID != out[j].SourceCurrencyID {
			return out[i].SourceCurrencyID < out[j].SourceCurrencyID
		}
		return out[i].TargetCurrencyID < out[j].TargetCurrencyID
	})
	return out, nil
}

// Transactions

func (s *Store) CreateTransaction(_ context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("insert transaction"); err != nil {
		return nil, err
	}
	if _, ok := s.currencies[tx.SourceCurrencyID]; !ok {
		return nil, apperrors.NewValidationError("transaction references an unknown user or currency")
	}
	if _, ok := s.currencies[tx.TargetCurrencyID]; !ok {
		return nil, apperrors.NewValidationError("transaction references an unknown user or currency")
	}
	if tx.UserID != nil {
		if _, ok := s.users[*tx.UserID]; !ok {
			return nil, apperrors.NewValidationError("transaction references an unknown user or currency")
		}
	}
	tx.ID = s.id()
	tx.CreatedAt = s.now()
	s.transactions[tx.ID] = tx
	return &tx, nil
}

func (s *Store) FindTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found", id))
	}
	return &tx, nil
}

func (s *Store) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return s.filterTransactions(func(domain.Transaction) bool { return true }), nil
}

func (s *Store) ListTransactionsByUser(_ context.Context, userID int64) ([]domain.Transaction, error) {
	return s.filterTransactions(func(tx domain.Transaction) bool {
		return tx.UserID != nil && *tx.UserID == userID
	}), nil
}

func (s *Store) ListPendingTransactions(_ context.Context) ([]domain.Transaction, error) {
	return s.filterTransactions(func(tx domain.Transaction) bool {
		return tx.Status == domain.StatusPending
	}), nil
}

func (s *Store) filterTransactions(keep func(domain.Transaction) bool) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ResolveTransaction(_ context.Context, id int64, res domain.Resolution) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("resolve transaction"); err != nil {
		return nil, err
	}
	tx, ok := s.transactions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found", id))
	}
	if err := res.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := tx.Resolve(res); err != nil {
		return nil, apperrors.NewAppError(http.StatusConflict, err.Error(), apperrors.ErrConflict)
	}
	s.transactions[id] = tx
	return &tx, nil
}

// Liquidity

func (s *Store) ListPools(_ context.Context) ([]domain.LiquidityPool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LiquidityPool, 0, len(s.pools))
	for _, p := range s.pools {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindPoolByID(_ context.Context, id int64) (*domain.LiquidityPool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pools[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("liquidity pool %d not found", id))
	}
	return &p, nil
}

func (s *Store) ListPositionsByUser(_ context.Context, userID int64) ([]domain.LiquidityPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LiquidityPosition, 0)
	for _, p := range s.positions {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ContributeToPool(_ context.Context, position domain.LiquidityPosition) (*domain.LiquidityPosition, *domain.LiquidityPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("contribute to pool"); err != nil {
		return nil, nil, err
	}
	pool, ok := s.pools[position.PoolID]
	if !ok {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("liquidity pool %d not found", position.PoolID))
	}
	if _, ok := s.users[position.UserID]; !ok {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", position.UserID))
	}

	total := pool.TotalLiquidity.Add(position.Amount)
	if err := domain.ValidateAmount(total); err != nil {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("liquidity pool %d total: %s", pool.ID, err))
	}
	pool.TotalLiquidity = total
	s.pools[pool.ID] = pool

	position.ID = s.id()
	position.CreatedAt = s.now()
	s.positions[position.ID] = position
	return &position, &pool, nil
}

// Users

func (s *Store) CreateUser(_ context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("insert user"); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.Username == user.Username ||
			(user.WalletAddress != nil && u.WalletAddress != nil && *u.WalletAddress == *user.WalletAddress) {
			return nil, apperrors.NewAppError(http.StatusConflict, "username or wallet address already registered", nil)
		}
	}
	user.ID = s.id()
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) FindUserByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.findUser("user "+username, func(u domain.User) bool { return u.Username == username })
}

func (s *Store) FindUserByWalletAddress(_ context.Context, walletAddress string) (*domain.User, error) {
	return s.findUser("wallet "+walletAddress, func(u domain.User) bool {
		return u.WalletAddress != nil && *u.WalletAddress == walletAddress
	})
}

func (s *Store) findUser(label string, match func(domain.User) bool) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError(label + " not found")
}
