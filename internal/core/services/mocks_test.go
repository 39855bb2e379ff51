package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	"github.com/SscSPs/parachain_remit/internal/core/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, sourceCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, sourceCurrencyID, targetCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Settlement test doubles ---

// manualTimer runs only when the test fires it.
type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
}

type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) services.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{delay: d, f: f}
	m.timers = append(m.timers, t)
	return &manualTimerHandle{s: m, t: t}
}

type manualTimerHandle struct {
	s *manualScheduler
	t *manualTimer
}

func (h *manualTimerHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	wasActive := !h.t.stopped
	h.t.stopped = true
	return wasActive
}

// FireAll runs every timer that has not been stopped and returns how many ran.
func (m *manualScheduler) FireAll() int {
	m.mu.Lock()
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

func (m *manualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.timers))
	for i, t := range m.timers {
		out[i] = t.delay
	}
	return out
}

// fixedSource always draws the same sample.
type fixedSource struct {
	f float64
	u uint64
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Uint64() uint64   { return s.u }

type recordingPublisher struct {
	mu    sync.Mutex
	calls []domain.Transaction
	err   error
}

func (p *recordingPublisher) PublishTransactionResolved(_ context.Context, tx domain.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, tx)
	return p.err
}

func (p *recordingPublisher) Calls() []domain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Transaction(nil), p.calls...)
}
