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
)

// SettlementScheduler is the part of the Settler the transaction service drives.
type SettlementScheduler interface {
	Schedule(tx domain.Transaction)
	Resolve(ctx context.Context, id int64) (*domain.Transaction, error)
}

type transactionService struct {
	BaseService
	txRepo       portsrepo.TransactionRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	rateRepo     portsrepo.ExchangeRateReader
	userRepo     portsrepo.UserReader
	settler      SettlementScheduler
}

// NewTransactionService creates the remittance lifecycle service.
func NewTransactionService(repos portsrepo.RepositoryProvider, settler SettlementScheduler) portssvc.TransactionSvcFacade {
	return &transactionService{
		txRepo:       repos.TransactionRepo,
		currencyRepo: repos.CurrencyRepo,
		rateRepo:     repos.ExchangeRateRepo,
		userRepo:     repos.UserRepo,
		settler:      settler,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// SubmitTransaction prices the transfer at the current rate, persists it as
// pending and schedules exactly one resolution. Nothing is scheduled if the
// insert fails.
func (s *transactionService) SubmitTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(req.SourceAmount); err != nil {
		return nil, fmt.Errorf("%w: source %s", apperrors.ErrValidation, err)
	}
	recipient := strings.TrimSpace(req.RecipientAddress)
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient address is required", apperrors.ErrValidation)
	}
	if req.SourceCurrencyID == req.TargetCurrencyID {
		return nil, fmt.Errorf("%w: source and target currencies must differ", apperrors.ErrValidation)
	}

	source, err := s.requireCurrency(ctx, req.SourceCurrencyID, "source")
	if err != nil {
		return nil, err
	}
	target, err := s.requireCurrency(ctx, req.TargetCurrencyID, "target")
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: user %d does not exist", apperrors.ErrValidation, *req.UserID)
			}
			return nil, fmt.Errorf("failed to verify user %d: %w", *req.UserID, err)
		}
	}

	rate, err := findRate(ctx, s.rateRepo, source, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return nil, err
	}

	fee := domain.CalculateFee(req.SourceAmount)
	created, err := s.txRepo.CreateTransaction(ctx, domain.Transaction{
		UserID:           req.UserID,
		SourceAmount:     req.SourceAmount,
		SourceCurrencyID: source.ID,
		TargetAmount:     domain.ConvertAfterFee(req.SourceAmount, fee, rate.Rate),
		TargetCurrencyID: target.ID,
		RecipientAddress: recipient,
		Fee:              fee,
		Status:           domain.StatusPending,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist transaction")
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}

	s.settler.Schedule(*created)
	s.LogInfo(ctx, "Transaction submitted",
		slog.Int64("transaction_id", created.ID),
		slog.String("source", source.Code),
		slog.String("target", target.Code),
		slog.String("source_amount", created.SourceAmount.String()))
	return created, nil
}

func (s *transactionService) requireCurrency(ctx context.Context, id int64, role string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s currency %d does not exist", apperrors.ErrValidation, role, id)
		}
		return nil, fmt.Errorf("failed to load %s currency %d: %w", role, id, err)
	}
	return currency, nil
}

// SettleTransaction resolves a pending transaction immediately instead of
// waiting for its timer.
func (s *transactionService) SettleTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	if _, err := s.txRepo.FindTransactionByID(ctx, id); err != nil {
		return nil, err
	}
	return s.settler.Resolve(ctx, id)
}

func (s *transactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txs == nil {
		return []domain.Transaction{}, nil
	}
	return txs, nil
}

func (s *transactionService) ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user transactions", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	if txs == nil {
		return []domain.Transaction{}, nil
	}
	return txs, nil
}
