package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	service          portssvc.CurrencySvcFacade
	rateService      portssvc.ExchangeRateSvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
	suite.rateService = services.NewExchangeRateService(suite.mockRateRepo, suite.service)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCode() {
	ctx := context.Background()
	expected := &domain.Currency{ID: 1, Code: "USD"}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, " usd ")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.NewNotFoundError("currency with code XXX not found")).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_StorageError() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestGetExchangeRate_Directional() {
	ctx := context.Background()
	usd := &domain.Currency{ID: 1, Code: "USD"}
	php := &domain.Currency{ID: 5, Code: "PHP"}
	rate := &domain.ExchangeRate{ID: 9, SourceCurrencyID: 1, TargetCurrencyID: 5, Rate: decimal.RequireFromString("55.27")}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "PHP").Return(php, nil)
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(5)).Return(rate, nil).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(5), int64(1)).
		Return(nil, apperrors.NewNotFoundError("exchange rate not found")).Once()

	got, err := suite.rateService.GetExchangeRate(ctx, "USD", "PHP")
	suite.Require().NoError(err)
	suite.Equal(rate, got)

	_, err = suite.rateService.GetExchangeRate(ctx, "PHP", "USD")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.Equal(404, apperrors.StatusCode(err))

	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").
		Return(nil, apperrors.NewNotFoundError("currency with code ZZZ not found")).Once()

	_, err := suite.rateService.GetExchangeRate(ctx, "ZZZ", "PHP")

	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindExchangeRate", 0)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
