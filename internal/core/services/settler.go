package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/core/ports/events"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
)

const (
	DefaultSettlementDelay       = 5 * time.Second
	DefaultSettlementSuccessRate = 0.8

	// resolveTimeout bounds a timer-driven resolution, which has no caller context.
	resolveTimeout = 10 * time.Second
)

// ErrSettlerClosed is returned once Close has been called.
var ErrSettlerClosed = errors.New("settler is closed")

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// OutcomeSource supplies the randomness behind settlement outcomes.
type OutcomeSource interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	Uint64() uint64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewOutcomeSource returns a goroutine-safe PCG source. Equal seeds yield equal
// outcome sequences.
func NewOutcomeSource(seed uint64) OutcomeSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Uint64()
}

// Settler resolves pending transactions after a delay. Every transaction it
// is asked to schedule is resolved at most once, whichever of the timer or an
// explicit Resolve call gets there first. A timer whose resolution fails on
// storage is rescheduled after another delay.
type Settler struct {
	BaseService
	repo        portsrepo.TransactionRepositoryFacade
	scheduler   Scheduler
	source      OutcomeSource
	publisher   events.TransactionPublisher
	delay       time.Duration
	successRate float64
	logger      *slog.Logger
	now         func() time.Time

	mu       sync.Mutex
	timers   map[int64]Timer
	inflight map[int64]struct{}
	closed   bool
	wg       sync.WaitGroup
}

// SettlerOption configures a Settler.
type SettlerOption func(*Settler)

func WithScheduler(sch Scheduler) SettlerOption {
	return func(s *Settler) { s.scheduler = sch }
}

func WithOutcomeSource(src OutcomeSource) SettlerOption {
	return func(s *Settler) { s.source = src }
}

func WithPublisher(p events.TransactionPublisher) SettlerOption {
	return func(s *Settler) { s.publisher = p }
}

func WithSettlementDelay(d time.Duration) SettlerOption {
	return func(s *Settler) { s.delay = d }
}

// WithSuccessRate sets the probability of a completed outcome.
func WithSuccessRate(p float64) SettlerOption {
	return func(s *Settler) { s.successRate = p }
}

// WithSettlerLogger sets the logger used for timer-driven resolutions.
func WithSettlerLogger(l *slog.Logger) SettlerOption {
	return func(s *Settler) { s.logger = l }
}

// NewSettler creates a Settler. Without options it waits five seconds, uses
// real timers and completes 80% of transactions.
func NewSettler(repo portsrepo.TransactionRepositoryFacade, opts ...SettlerOption) *Settler {
	s := &Settler{
		repo:        repo,
		scheduler:   timeScheduler{},
		delay:       DefaultSettlementDelay,
		successRate: DefaultSettlementSuccessRate,
		logger:      slog.Default(),
		now:         time.Now,
		timers:      make(map[int64]Timer),
		inflight:    make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewOutcomeSource(rand.Uint64())
	}
	return s
}

// Schedule arranges for tx to be resolved after the settlement delay. It is
// a no-op for terminal or already scheduled transactions.
func (s *Settler) Schedule(tx domain.Transaction) {
	s.scheduleAfter(tx.ID, tx.Status, s.delay)
}

func (s *Settler) scheduleAfter(id int64, status domain.TransactionStatus, d time.Duration) bool {
	if status != domain.StatusPending {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if _, ok := s.timers[id]; ok {
		return false
	}
	s.timers[id] = s.scheduler.AfterFunc(d, func() { s.fire(id) })
	s.logger.Info("Settlement scheduled", slog.Int64("transaction_id", id), slog.Duration("delay", d))
	return true
}

func (s *Settler) fire(id int64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	_, err := s.resolve(ctx, id)
	if err == nil || errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	// The claim already dropped this timer; retry rather than leave the row pending.
	rescheduled := s.scheduleAfter(id, domain.StatusPending, s.delay)
	s.logger.Error("Scheduled settlement failed",
		slog.Int64("transaction_id", id),
		slog.Bool("rescheduled", rescheduled),
		slog.String("error", err.Error()))
}

// Resolve settles the transaction now, cancelling its timer. It returns
// apperrors.ErrConflict if the transaction is already terminal or being
// resolved concurrently.
func (s *Settler) Resolve(ctx context.Context, id int64) (*domain.Transaction, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSettlerClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	return s.resolve(ctx, id)
}

func (s *Settler) resolve(ctx context.Context, id int64) (*domain.Transaction, error) {
	if !s.claim(id) {
		return nil, apperrors.NewAppError(http.StatusConflict, fmt.Sprintf("transaction %d is already being resolved", id), apperrors.ErrConflict)
	}
	defer s.release(id)

	res := s.drawResolution()
	resolved, err := s.repo.ResolveTransaction(ctx, id, res)
	if err != nil {
		return nil, err
	}

	attrs := []any{slog.Int64("transaction_id", id), slog.String("status", string(resolved.Status))}
	if resolved.TxHash != nil {
		attrs = append(attrs, slog.String("tx_hash", *resolved.TxHash))
	}
	s.logger.Info("Settlement resolved", attrs...)

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionResolved(ctx, *resolved); err != nil {
			s.logger.Warn("Failed to publish settlement", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
		}
	}
	return resolved, nil
}

// claim marks id as being resolved and drops its timer.
func (s *Settler) claim(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return false
	}
	s.inflight[id] = struct{}{}
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	return true
}

func (s *Settler) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

// drawResolution takes one uniform sample: below the success rate completes
// with a synthetic 32-byte hash, otherwise fails.
func (s *Settler) drawResolution() domain.Resolution {
	if s.source.Float64() < s.successRate {
		hash := fmt.Sprintf("0x%016x%016x%016x%016x",
			s.source.Uint64(), s.source.Uint64(), s.source.Uint64(), s.source.Uint64())
		return domain.Resolution{Status: domain.StatusCompleted, TxHash: &hash}
	}
	return domain.Resolution{Status: domain.StatusFailed}
}

// Cancel stops the pending timer for id. The transaction stays pending until
// resolved explicitly or resumed after a restart.
func (s *Settler) Cancel(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, id)
	s.logger.Info("Settlement cancelled", slog.Int64("transaction_id", id))
	return true
}

// Pending returns the ids with a scheduled resolution, ascending.
func (s *Settler) Pending() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ResumePending schedules every transaction left pending in storage, keeping
// whatever remains of its original delay.
func (s *Settler) ResumePending(ctx context.Context) (int, error) {
	pending, err := s.repo.ListPendingTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	resumed := 0
	for _, tx := range pending {
		remaining := s.delay - s.now().Sub(tx.CreatedAt)
		if remaining < 0 {
			remaining = 0
		}
		if s.scheduleAfter(tx.ID, tx.Status, remaining) {
			resumed++
		}
	}
	s.LogInfo(ctx, "Resumed pending settlements", slog.Int("count", resumed))
	return resumed, nil
}

// Close stops all timers and waits for in-flight resolutions to finish.
func (s *Settler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
}
