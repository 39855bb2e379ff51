package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/parachain_remit/internal/apperrors"
	"github.com/SscSPs/parachain_remit/internal/core/domain"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/dto"
	"github.com/SscSPs/parachain_remit/internal/handlers"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/SscSPs/parachain_remit/internal/platform/config"
	"github.com/SscSPs/parachain_remit/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	currencies   *MockCurrencyService
	rates        *MockExchangeRateService
	quotes       *MockQuoteService
	transactions *MockTransactionService
	liquidity    *MockLiquidityService
	users        *MockUserService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.currencies = new(MockCurrencyService)
	suite.rates = new(MockExchangeRateService)
	suite.quotes = new(MockQuoteService)
	suite.transactions = new(MockTransactionService)
	suite.liquidity = new(MockLiquidityService)
	suite.users = new(MockUserService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router,
		&config.Config{JWTSecret: testJWTSecret, IsProduction: true},
		&portssvc.ServiceContainer{
			Currency:     suite.currencies,
			ExchangeRate: suite.rates,
			Quote:        suite.quotes,
			Transaction:  suite.transactions,
			Liquidity:    suite.liquidity,
			User:         suite.users,
		},
		handlers.RouteDeps{},
	)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.currencies.AssertExpectations(suite.T())
	suite.rates.AssertExpectations(suite.T())
	suite.quotes.AssertExpectations(suite.T())
	suite.transactions.AssertExpectations(suite.T())
	suite.liquidity.AssertExpectations(suite.T())
	suite.users.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) token(userID int64) string {
	token, _, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func usd() domain.Currency {
	return domain.Currency{ID: 1, Code: "USD", Name: "US Dollar", Symbol: "$", ParachainName: "Acala", ParachainID: "USDC Stablecoin"}
}

func php() domain.Currency {
	return domain.Currency{ID: 2, Code: "PHP", Name: "Philippine Peso", Symbol: "₱", ParachainName: "Moonbeam", ParachainID: "PHP Stablecoin"}
}

func decimalEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/api/health", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.currencies.On("GetCurrencyByCode", mock.Anything, "XYZ").
		Return(nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotFound, "XYZ")).Once()

	w := suite.do(http.MethodGet, "/api/currencies/XYZ", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("currency not found: XYZ", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestListCurrencies_StorageErrorHidesCause() {
	suite.currencies.On("ListCurrencies", mock.Anything).
		Return(nil, apperrors.NewStorageError("select failed", fmt.Errorf("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/currencies", nil, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestGetExchangeRate_InverseMissing() {
	suite.rates.On("GetExchangeRate", mock.Anything, "PHP", "USD").
		Return(nil, fmt.Errorf("%w: PHP to USD", apperrors.ErrRateNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/exchange-rates/PHP/USD", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCalculate_Success() {
	quote := domain.NewQuote(decimal.NewFromInt(100), usd(), php(), decimal.RequireFromString("55.27"))
	suite.quotes.On("Calculate", mock.Anything, decimalEq("100"), "USD", "PHP").Return(&quote, nil).Once()

	w := suite.do(http.MethodPost, "/api/calculate", map[string]any{
		"sourceAmount":       100,
		"sourceCurrencyCode": "USD",
		"targetCurrencyCode": "PHP",
	}, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CalculateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Fee.Equal(decimal.NewFromInt(1)), resp.Fee.String())
	suite.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("5471.73")), resp.ConvertedAmount.String())
	suite.Equal("PHP", resp.TargetCurrency.Code)
}

func (suite *HandlerTestSuite) TestCalculate_AcceptsStringAmount() {
	quote := domain.NewQuote(decimal.RequireFromString("12.5"), usd(), php(), decimal.RequireFromString("55.27"))
	suite.quotes.On("Calculate", mock.Anything, decimalEq("12.5"), "USD", "PHP").Return(&quote, nil).Once()

	w := suite.do(http.MethodPost, "/api/calculate", map[string]any{
		"sourceAmount":       "12.5",
		"sourceCurrencyCode": "USD",
		"targetCurrencyCode": "PHP",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestCalculate_TinyPositiveAmountPassesBinding() {
	tiny := "1E-400"
	quote := domain.NewQuote(decimal.RequireFromString(tiny), usd(), php(), decimal.RequireFromString("55.27"))
	suite.quotes.On("Calculate", mock.Anything, decimalEq(tiny), "USD", "PHP").Return(&quote, nil).Once()

	w := suite.do(http.MethodPost, "/api/calculate", map[string]any{
		"sourceAmount":       tiny,
		"sourceCurrencyCode": "USD",
		"targetCurrencyCode": "PHP",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestCalculate_RejectedBeforeService() {
	cases := map[string]map[string]any{
		"missing amount":      {"sourceCurrencyCode": "USD", "targetCurrencyCode": "PHP"},
		"zero amount":         {"sourceAmount": 0, "sourceCurrencyCode": "USD", "targetCurrencyCode": "PHP"},
		"negative amount":     {"sourceAmount": -5, "sourceCurrencyCode": "USD", "targetCurrencyCode": "PHP"},
		"missing target code": {"sourceAmount": 10, "sourceCurrencyCode": "USD"},
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/calculate", body, "")
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.quotes.AssertNumberOfCalls(suite.T(), "Calculate", 0)
}

func (suite *HandlerTestSuite) TestCalculate_MissingRate() {
	suite.quotes.On("Calculate", mock.Anything, decimalEq("100"), "PHP", "USD").
		Return(nil, fmt.Errorf("%w: PHP to USD", apperrors.ErrRateNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/calculate", map[string]any{
		"sourceAmount":       100,
		"sourceCurrencyCode": "PHP",
		"targetCurrencyCode": "USD",
	}, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("exchange rate not found: PHP to USD", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestCreateTransaction_Anonymous() {
	created := &domain.Transaction{
		ID:               9,
		SourceAmount:     decimal.NewFromInt(100),
		SourceCurrencyID: 1,
		TargetAmount:     decimal.RequireFromString("5471.73"),
		TargetCurrencyID: 2,
		RecipientAddress: "0xabc",
		Fee:              decimal.NewFromInt(1),
		Status:           domain.StatusPending,
		CreatedAt:        time.Now(),
	}
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.UserID == nil && req.SourceCurrencyID == 1 && req.TargetCurrencyID == 2 && req.RecipientAddress == "0xabc"
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"sourceAmount":     100,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, "")

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.ID)
	suite.Equal("pending", resp.Status)
	suite.Nil(resp.TxHash)
	suite.NotContains(w.Body.String(), "txHash")
}

func (suite *HandlerTestSuite) TestCreateTransaction_UserFromToken() {
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.UserID != nil && *req.UserID == 42
	})).Return(&domain.Transaction{ID: 1, Status: domain.StatusPending}, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, suite.token(42))

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_BodyUserMustMatchToken() {
	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"userId":           7,
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, suite.token(42))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.transactions.AssertNumberOfCalls(suite.T(), "SubmitTransaction", 0)
}

func (suite *HandlerTestSuite) TestCreateTransaction_BodyUserMatchingToken() {
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.UserID != nil && *req.UserID == 42
	})).Return(&domain.Transaction{ID: 1, Status: domain.StatusPending}, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"userId":           42,
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, suite.token(42))

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_AnonymousKeepsBodyUser() {
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.UserID != nil && *req.UserID == 7
	})).Return(&domain.Transaction{ID: 1, Status: domain.StatusPending}, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"userId":           7,
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, "")

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions() {
	hash := "0x" + string(bytes.Repeat([]byte("cd"), 32))
	txs := []domain.Transaction{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusCompleted, TxHash: &hash},
	}
	suite.transactions.On("ListTransactions", mock.Anything).Return(txs, nil).Twice()

	first := suite.do(http.MethodGet, "/api/transactions", nil, "")
	second := suite.do(http.MethodGet, "/api/transactions", nil, "")

	suite.Require().Equal(http.StatusOK, first.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(first.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(int64(1), resp[0].ID)
	suite.Equal("completed", resp[1].Status)
	suite.JSONEq(first.Body.String(), second.Body.String())
}

func (suite *HandlerTestSuite) TestCreateTransaction_BadToken() {
	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
		"recipientAddress": "0xabc",
	}, "not-a-jwt")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.transactions.AssertNumberOfCalls(suite.T(), "SubmitTransaction", 0)
}

func (suite *HandlerTestSuite) TestExpiredToken() {
	expired, _, err := utils.GenerateJWT(42, testJWTSecret, -time.Minute, "test")
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/transactions/1", nil, expired)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Token has expired", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestCreateTransaction_ValidationFromService() {
	suite.transactions.On("SubmitTransaction", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, fmt.Errorf("%w: PHP to USD", apperrors.ErrRateNotFound))).Once()

	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"sourceAmount":     10,
		"sourceCurrencyId": 2,
		"targetCurrencyId": 1,
		"recipientAddress": "0xabc",
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_MissingRecipient() {
	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"sourceAmount":     10,
		"sourceCurrencyId": 1,
		"targetCurrencyId": 2,
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNumberOfCalls(suite.T(), "SubmitTransaction", 0)
}

func (suite *HandlerTestSuite) TestGetTransaction_InvalidID() {
	w := suite.do(http.MethodGet, "/api/transactions/abc", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNumberOfCalls(suite.T(), "GetTransaction", 0)
}

func (suite *HandlerTestSuite) TestGetTransaction_Completed() {
	hash := "0x" + string(bytes.Repeat([]byte("ab"), 32))
	suite.transactions.On("GetTransaction", mock.Anything, int64(5)).
		Return(&domain.Transaction{ID: 5, Status: domain.StatusCompleted, TxHash: &hash}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions/5", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("completed", resp.Status)
	suite.Require().NotNil(resp.TxHash)
	suite.Equal(hash, *resp.TxHash)
}

func (suite *HandlerTestSuite) TestSettleTransaction_AlreadyResolved() {
	suite.transactions.On("SettleTransaction", mock.Anything, int64(5)).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "transaction 5 is already resolved", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/transactions/5/settle", nil, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactionsByUser_Empty() {
	suite.transactions.On("ListTransactionsByUser", mock.Anything, int64(3)).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions/user/3", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetPool_NotFound() {
	suite.liquidity.On("GetPool", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("liquidity pool 99 not found")).Once()

	w := suite.do(http.MethodGet, "/api/liquidity-pools/99", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePosition_UserFromToken() {
	suite.liquidity.On("Contribute", mock.Anything, mock.MatchedBy(func(req dto.CreateLiquidityPositionRequest) bool {
		return req.UserID != nil && *req.UserID == 42 && req.PoolID == 1 && req.Amount.Equal(decimal.NewFromInt(500))
	})).Return(&domain.LiquidityPosition{ID: 1, UserID: 42, PoolID: 1, Amount: decimal.NewFromInt(500)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/liquidity-positions", map[string]any{"poolId": 1, "amount": 500}, suite.token(42))

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePosition_BodyUserMustMatchToken() {
	w := suite.do(http.MethodPost, "/api/liquidity-positions", map[string]any{"userId": 7, "poolId": 1, "amount": 500}, suite.token(42))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.liquidity.AssertNumberOfCalls(suite.T(), "Contribute", 0)
}

func (suite *HandlerTestSuite) TestCreatePosition_ZeroAmount() {
	w := suite.do(http.MethodPost, "/api/liquidity-positions", map[string]any{"userId": 1, "poolId": 1, "amount": 0}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.liquidity.AssertNumberOfCalls(suite.T(), "Contribute", 0)
}

func (suite *HandlerTestSuite) TestCreateUser_Duplicate() {
	suite.users.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "username already taken", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/users", map[string]any{"username": "alice", "password": "password123"}, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestLogin() {
	suite.users.On("Authenticate", mock.Anything, "alice", "password123").
		Return(&dto.LoginResponse{Token: "tok", ExpiresAt: 1700000000}, nil).Once()
	suite.users.On("Authenticate", mock.Anything, "alice", "wrong-password").
		Return(nil, apperrors.ErrUnauthorized).Once()

	ok := suite.do(http.MethodPost, "/api/auth/login", map[string]any{"username": "alice", "password": "password123"}, "")
	suite.Equal(http.StatusOK, ok.Code)
	suite.JSONEq(`{"token":"tok","expiresAt":1700000000}`, ok.Body.String())

	denied := suite.do(http.MethodPost, "/api/auth/login", map[string]any{"username": "alice", "password": "wrong-password"}, "")
	suite.Equal(http.StatusUnauthorized, denied.Code)
	suite.Equal("Invalid username or password", suite.errorBody(denied))
}

func TestLoginRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loginLimiter, err := middleware.NewMemoryLimiter("1-M")
	if err != nil {
		t.Fatal(err)
	}
	users := new(MockUserService)
	users.On("Authenticate", mock.Anything, "alice", "password123").Return(nil, apperrors.ErrUnauthorized).Once()

	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{JWTSecret: testJWTSecret, IsProduction: true},
		&portssvc.ServiceContainer{User: users}, handlers.RouteDeps{LoginLimiter: loginLimiter})

	codes := make([]int, 0, 2)
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"alice","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes %v", codes)
	}
	users.AssertExpectations(t)
}
