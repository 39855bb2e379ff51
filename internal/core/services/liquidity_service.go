package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portsrepo "github.com/SscSPs/parachain_remit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
)

type liquidityService struct {
	BaseService
	liquidityRepo portsrepo.LiquidityRepositoryFacade
	currencyRepo  portsrepo.CurrencyReader
}

// NewLiquidityService creates the liquidity position ledger service.
func NewLiquidityService(liquidityRepo portsrepo.LiquidityRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.LiquiditySvcFacade {
	return &liquidityService{
		liquidityRepo: liquidityRepo,
		currencyRepo:  currencyRepo,
	}
}

var _ portssvc.LiquiditySvcFacade = (*liquidityService)(nil)

func (s *liquidityService) ListPools(ctx context.Context) ([]domain.PoolWithCurrencies, error) {
	pools, err := s.liquidityRepo.ListPools(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liquidity pools")
		return nil, fmt.Errorf("failed to list liquidity pools: %w", err)
	}

	currencies, err := s.currencyIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PoolWithCurrencies, len(pools))
	for i, p := range pools {
		out[i] = withCurrencies(p, currencies)
	}
	return out, nil
}

func (s *liquidityService) GetPool(ctx context.Context, id int64) (*domain.PoolWithCurrencies, error) {
	pool, err := s.liquidityRepo.FindPoolByID(ctx, id)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyIndex(ctx)
	if err != nil {
		return nil, err
	}
	joined := withCurrencies(*pool, currencies)
	return &joined, nil
}

func (s *liquidityService) ListPositionsByUser(ctx context.Context, userID int64) ([]domain.PositionWithPool, error) {
	positions, err := s.liquidityRepo.ListPositionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liquidity positions", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list positions for user %d: %w", userID, err)
	}
	if len(positions) == 0 {
		return []domain.PositionWithPool{}, nil
	}

	pools, err := s.liquidityRepo.ListPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list liquidity pools: %w", err)
	}
	byID := make(map[int64]domain.LiquidityPool, len(pools))
	for _, p := range pools {
		byID[p.ID] = p
	}

	out := make([]domain.PositionWithPool, len(positions))
	for i, pos := range positions {
		out[i] = domain.PositionWithPool{LiquidityPosition: pos}
		if p, ok := byID[pos.PoolID]; ok {
			out[i].Pool = &p
		}
	}
	return out, nil
}

// Contribute records a position and grows the pool's total liquidity by the
// same amount. A missing pool writes nothing.
func (s *liquidityService) Contribute(ctx context.Context, req dto.CreateLiquidityPositionRequest) (*domain.LiquidityPosition, error) {
	if req.UserID == nil {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	position, pool, err := s.liquidityRepo.ContributeToPool(ctx, domain.LiquidityPosition{
		UserID: *req.UserID,
		PoolID: req.PoolID,
		Amount: req.Amount,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record liquidity contribution",
			slog.Int64("pool_id", req.PoolID), slog.Int64("user_id", *req.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Liquidity contributed",
		slog.Int64("position_id", position.ID),
		slog.Int64("pool_id", pool.ID),
		slog.String("amount", position.Amount.String()),
		slog.String("total_liquidity", pool.TotalLiquidity.String()))
	return position, nil
}

func (s *liquidityService) currencyIndex(ctx context.Context) (map[int64]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	idx := make(map[int64]domain.Currency, len(currencies))
	for _, c := range currencies {
		idx[c.ID] = c
	}
	return idx, nil
}

func withCurrencies(pool domain.LiquidityPool, currencies map[int64]domain.Currency) domain.PoolWithCurrencies {
	joined := domain.PoolWithCurrencies{LiquidityPool: pool}
	if c, ok := currencies[pool.SourceCurrencyID]; ok {
		joined.SourceCurrency = &c
	}
	if c, ok := currencies[pool.TargetCurrencyID]; ok {
		joined.TargetCurrency = &c
	}
	return joined
}
