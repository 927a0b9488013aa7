package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/SscSPs/pos_payments/internal/handlers"
	"github.com/SscSPs/pos_payments/internal/platform/config"
	"github.com/SscSPs/pos_payments/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) BaseCurrency() string {
	return m.Called().String(0)
}

func (m *MockPaymentService) ListPaymentMethods(ctx context.Context) []domain.PaymentMethodOption {
	return m.Called(ctx).Get(0).([]domain.PaymentMethodOption)
}

func (m *MockPaymentService) PreviewCheckout(ctx context.Context, req dto.CreateCheckoutRequest) (*domain.MixedPaymentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixedPaymentResult), args.Error(1)
}

func (m *MockPaymentService) QuoteChange(ctx context.Context, req dto.ChangeQuoteRequest) (domain.ChangeResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ChangeResult), args.Error(1)
}

func (m *MockPaymentService) SuggestDenominations(ctx context.Context, amountBase decimal.Decimal) []domain.DenominationCount {
	return m.Called(ctx, amountBase).Get(0).([]domain.DenominationCount)
}

func (m *MockPaymentService) SuggestTips(ctx context.Context, saleTotal decimal.Decimal, percentages []decimal.Decimal) map[string]decimal.Decimal {
	return m.Called(ctx, saleTotal, percentages).Get(0).(map[string]decimal.Decimal)
}

func (m *MockPaymentService) ValidateCard(ctx context.Context, number string) (bool, string) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.String(1)
}

func (m *MockPaymentService) ValidateMobileNumber(ctx context.Context, number string) (bool, string) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.String(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock CheckoutService ---
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateCheckout(ctx context.Context, req dto.CreateCheckoutRequest, cashierID string) (*domain.Checkout, error) {
	args := m.Called(ctx, req, cashierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}

func (m *MockCheckoutService) GetCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}

func (m *MockCheckoutService) ListCheckouts(ctx context.Context, params dto.ListCheckoutsParams) (*dto.ListCheckoutsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCheckoutsResponse), args.Error(1)
}

var _ portssvc.CheckoutSvcFacade = (*MockCheckoutService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) SetExchangeRate(ctx context.Context, currencyCode string, req dto.SetExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) LoadExchangeRates(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	paymentSvc   *MockPaymentService
	checkoutSvc  *MockCheckoutService
	rateSvc      *MockExchangeRateService
	cashierToken string
	adminToken   string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "pos-test",
		IsProduction: true,
	}
	suite.paymentSvc = new(MockPaymentService)
	suite.checkoutSvc = new(MockCheckoutService)
	suite.rateSvc = new(MockExchangeRateService)
	suite.paymentSvc.On("BaseCurrency").Return("CRC").Maybe()

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Payment:      suite.paymentSvc,
		Checkout:     suite.checkoutSvc,
		ExchangeRate: suite.rateSvc,
	})

	suite.cashierToken = suite.generateTestToken("cashier-1", utils.RoleCashier)
	suite.adminToken = suite.generateTestToken("admin-1", utils.RoleAdmin)
}

// generateTestToken creates a signed JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func paidCheckout() *domain.Checkout {
	card := "4111111111111111"
	records := []domain.PaymentRecord{
		{PaymentID: "p1", Method: domain.CashLocal, Amount: decimal.NewFromInt(10000), CurrencyCode: "CRC", ExchangeRate: decimal.NewFromInt(1), AmountBase: decimal.NewFromInt(10000), Validated: true},
		{PaymentID: "p2", Method: domain.CreditCard, Amount: decimal.NewFromInt(5000), CurrencyCode: "CRC", Reference: &card, Commission: decimal.NewFromInt(175), CommissionBase: decimal.NewFromInt(175), ExchangeRate: decimal.NewFromInt(1), AmountBase: decimal.NewFromInt(5000), Validated: true, ValidationDetail: "Visa"},
	}
	return &domain.Checkout{
		CheckoutID: "chk-1",
		MixedPaymentResult: domain.MixedPaymentResult{
			Payments:         records,
			BaseCurrency:     "CRC",
			SaleTotal:        decimal.NewFromInt(14000),
			TotalPaidBase:    decimal.NewFromInt(15000),
			TotalCommissions: decimal.NewFromInt(175),
			Change: domain.ChangeResult{Change: &domain.Change{
				AmountBase:        decimal.NewFromInt(1000),
				AmountReference:   decimal.RequireFromString("1.92"),
				ReferenceCurrency: "USD",
				Denominations:     []domain.DenominationCount{{Denomination: decimal.NewFromInt(1000), Count: 1}},
			}},
			Summary:   domain.SummarizeByMethod(records),
			FullyPaid: true,
		},
		AuditFields: domain.AuditFields{CreatedBy: "cashier-1"},
	}
}

func checkoutBody() map[string]any {
	return map[string]any{
		"saleTotal": 14000,
		"payments": []map[string]any{
			{"method": "cash_local", "amount": 10000},
			{"method": "credit_card", "amount": 5000, "reference": "4111111111111111"},
		},
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestListPaymentMethods() {
	suite.paymentSvc.On("ListPaymentMethods", mock.Anything).Return([]domain.PaymentMethodOption{
		{Method: domain.CreditCard, PaymentMethodConfig: domain.PaymentMethodConfig{Name: "Credit card", Currency: "CRC", CommissionRate: decimal.RequireFromString("0.035"), RequiresValidation: true}},
	}).Once()

	w := suite.do(http.MethodGet, "/api/v1/payment-methods", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.PaymentMethodResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal("credit_card", body[0].Code)
	suite.True(body[0].RequiresValidation)
}

func (suite *HandlerTestSuite) TestCreateCheckout_RequiresAuth() {
	w := suite.do(http.MethodPost, "/api/v1/checkouts", "", checkoutBody())
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.checkoutSvc.AssertNotCalled(suite.T(), "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCheckout_Success() {
	suite.checkoutSvc.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(req dto.CreateCheckoutRequest) bool {
		return req.SaleTotal.Equal(decimal.NewFromInt(14000)) && len(req.Payments) == 2
	}), "cashier-1").Return(paidCheckout(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/checkouts", suite.cashierToken, checkoutBody())

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var body dto.CheckoutResponse
	suite.decode(w, &body)
	suite.Equal("chk-1", body.CheckoutID)
	suite.True(body.FullyPaid)
	suite.Equal("change ₡1000.00", body.Change.Display)
	suite.Require().Len(body.Payments, 2)
	suite.Equal("credit_card", body.Payments[1].Method)
	suite.Equal("************1111", *body.Payments[1].Reference)
	suite.checkoutSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateCheckout_BindingErrors() {
	zeroAmount := checkoutBody()
	zeroAmount["payments"] = []map[string]any{{"method": "cash_local", "amount": 0}}

	noPayments := checkoutBody()
	noPayments["payments"] = []map[string]any{}

	badCurrency := checkoutBody()
	badCurrency["payments"] = []map[string]any{{"method": "cash_foreign", "amount": 20, "currencyCode": "DOLLARS"}}

	noTotal := checkoutBody()
	delete(noTotal, "saleTotal")

	hugeAmount := checkoutBody()
	hugeAmount["payments"] = []map[string]any{{"method": "cash_local", "amount": json.Number("2e23")}}

	hugeExponent := checkoutBody()
	hugeExponent["saleTotal"] = json.Number("1e2000000")

	tooManyDecimals := checkoutBody()
	tooManyDecimals["payments"] = []map[string]any{{"method": "cash_local", "amount": json.Number("10.000000001")}}

	for name, body := range map[string]map[string]any{
		"zero amount":       zeroAmount,
		"no payments":       noPayments,
		"bad currency":      badCurrency,
		"no total":          noTotal,
		"huge amount":       hugeAmount,
		"huge exponent":     hugeExponent,
		"too many decimals": tooManyDecimals,
	} {
		w := suite.do(http.MethodPost, "/api/v1/checkouts", suite.cashierToken, body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.checkoutSvc.AssertNotCalled(suite.T(), "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCheckout_InvalidPayment() {
	suite.checkoutSvc.On("CreateCheckout", mock.Anything, mock.Anything, "cashier-1").
		Return(nil, &apperrors.InvalidPaymentError{Index: 1, Method: "credit_card", Reason: "card number failed checksum"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/checkouts", suite.cashierToken, checkoutBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal(float64(1), body["paymentIndex"])
	suite.Equal("credit_card", body["method"])
	suite.Equal("card number failed checksum", body["reason"])
}

func (suite *HandlerTestSuite) TestCreateCheckout_ErrorMapping() {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInsufficientPayment, http.StatusUnprocessableEntity},
		{&apperrors.UnknownMethodError{Method: "barter"}, http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.checkoutSvc.On("CreateCheckout", mock.Anything, mock.Anything, "cashier-1").Return(nil, tt.err).Once()
		w := suite.do(http.MethodPost, "/api/v1/checkouts", suite.cashierToken, checkoutBody())
		suite.Equal(tt.want, w.Code, tt.err.Error())
	}
}

func (suite *HandlerTestSuite) TestPreviewCheckout_Shortfall() {
	result := &domain.MixedPaymentResult{
		BaseCurrency:  "CRC",
		SaleTotal:     decimal.NewFromInt(20000),
		TotalPaidBase: decimal.NewFromInt(15000),
		Change: domain.ChangeResult{Shortfall: &domain.Shortfall{
			AmountBase: decimal.NewFromInt(5000), AmountInPaymentCurrency: decimal.NewFromInt(5000), PaymentCurrency: "CRC",
		}},
	}
	suite.paymentSvc.On("PreviewCheckout", mock.Anything, mock.Anything).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/checkouts/preview", suite.cashierToken, checkoutBody())

	suite.Equal(http.StatusOK, w.Code)
	var body dto.MixedPaymentResponse
	suite.decode(w, &body)
	suite.False(body.FullyPaid)
	suite.Equal("short ₡5000.00", body.Change.Display)
}

func (suite *HandlerTestSuite) TestGetCheckout() {
	suite.checkoutSvc.On("GetCheckoutByID", mock.Anything, "chk-1").Return(paidCheckout(), nil).Once()
	suite.checkoutSvc.On("GetCheckoutByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("checkout missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/checkouts/chk-1", suite.cashierToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/checkouts/missing", suite.cashierToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListCheckouts() {
	next := "token-2"
	suite.checkoutSvc.On("ListCheckouts", mock.Anything, dto.ListCheckoutsParams{Limit: 5, NextToken: "token-1"}).
		Return(&dto.ListCheckoutsResponse{Checkouts: []dto.CheckoutResponse{{CheckoutID: "chk-1"}}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/checkouts?limit=5&nextToken=token-1", suite.adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListCheckoutsResponse
	suite.decode(w, &body)
	suite.Len(body.Checkouts, 1)
	suite.Equal("token-2", *body.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/checkouts?limit=500", suite.adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestQuoteChange() {
	suite.paymentSvc.On("QuoteChange", mock.Anything, mock.MatchedBy(func(req dto.ChangeQuoteRequest) bool {
		return req.CurrencyCode == "USD" && req.AmountPaid.Equal(decimal.NewFromInt(30))
	})).Return(domain.ChangeResult{Change: &domain.Change{AmountBase: decimal.NewFromInt(1600), ReferenceCurrency: "USD"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/change", "", map[string]any{"amountPaid": 30, "saleTotal": 14000, "currencyCode": "USD"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ChangeResponse
	suite.decode(w, &body)
	suite.Equal("change ₡1600.00", body.Display)

	w = suite.do(http.MethodPost, "/api/v1/change", "", map[string]any{"amountPaid": -1, "saleTotal": 14000})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/change", "", map[string]any{"amountPaid": json.Number("1e16"), "saleTotal": 14000})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSuggestDenominations() {
	suite.paymentSvc.On("SuggestDenominations", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(1600))
	})).Return([]domain.DenominationCount{{Denomination: decimal.NewFromInt(1000), Count: 1}}).Once()

	w := suite.do(http.MethodGet, "/api/v1/denominations?amount=1600", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.DenominationsResponse
	suite.decode(w, &body)
	suite.Equal("CRC", body.CurrencyCode)
	suite.Len(body.Denominations, 1)

	for _, amount := range []string{"lots", "-5", "2e23", "1e2000000", "1e-2000000", "1000000000000000.5"} {
		w = suite.do(http.MethodGet, "/api/v1/denominations?amount="+amount, "", nil)
		suite.Equal(http.StatusBadRequest, w.Code, amount)
	}
	suite.paymentSvc.AssertNumberOfCalls(suite.T(), "SuggestDenominations", 1)
}

func (suite *HandlerTestSuite) TestSuggestTips() {
	suite.paymentSvc.On("SuggestTips", mock.Anything, mock.Anything, mock.MatchedBy(func(ps []decimal.Decimal) bool {
		return len(ps) == 2 && ps[1].Equal(decimal.NewFromInt(18))
	})).Return(map[string]decimal.Decimal{"10%": decimal.NewFromInt(1000), "18%": decimal.NewFromInt(1800)}).Once()

	w := suite.do(http.MethodGet, "/api/v1/tips?total=10000&percentages=10,18", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.TipsResponse
	suite.decode(w, &body)
	suite.True(body.Tips["18%"].Equal(decimal.NewFromInt(1800)))

	w = suite.do(http.MethodGet, "/api/v1/tips?total=10000&percentages=ten", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/tips?total=1e2000000", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestValidateReferences() {
	suite.paymentSvc.On("ValidateCard", mock.Anything, "4111111111111111").Return(true, "Visa").Once()
	suite.paymentSvc.On("ValidateMobileNumber", mock.Anything, "1234").Return(false, "invalid mobile number").Once()

	w := suite.do(http.MethodPost, "/api/v1/validate/card", "", map[string]string{"number": "4111111111111111"})
	suite.Equal(http.StatusOK, w.Code)
	var card dto.ValidationResponse
	suite.decode(w, &card)
	suite.Equal(dto.ValidationResponse{Valid: true, Detail: "Visa"}, card)

	w = suite.do(http.MethodPost, "/api/v1/validate/mobile", "", map[string]string{"number": "1234"})
	suite.Equal(http.StatusOK, w.Code)
	var phone dto.ValidationResponse
	suite.decode(w, &phone)
	suite.False(phone.Valid)

	w = suite.do(http.MethodPost, "/api/v1/validate/card", "", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExchangeRates_Read() {
	suite.rateSvc.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{{CurrencyCode: "USD", Rate: decimal.NewFromInt(520)}}, nil).Once()
	suite.rateSvc.On("GetExchangeRate", mock.Anything, "GBP").Return(nil, apperrors.NewNotFoundError("exchange rate for GBP")).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var rates []dto.ExchangeRateResponse
	suite.decode(w, &rates)
	suite.Require().Len(rates, 1)
	suite.Equal("CRC", rates[0].BaseCurrency)

	w = suite.do(http.MethodGet, "/api/v1/exchange-rates/GBP", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/exchange-rates/POUND", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSetExchangeRate_Permissions() {
	body := map[string]any{"rate": 530}

	w := suite.do(http.MethodPut, "/api/v1/exchange-rates/USD", "", body)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/exchange-rates/USD", suite.cashierToken, body)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.rateSvc.AssertNotCalled(suite.T(), "SetExchangeRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSetExchangeRate_Admin() {
	suite.rateSvc.On("SetExchangeRate", mock.Anything, "USD", mock.MatchedBy(func(req dto.SetExchangeRateRequest) bool {
		return req.Rate.Equal(decimal.NewFromInt(530))
	}), "admin-1").Return(&domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.NewFromInt(530)}, nil).Once()
	suite.rateSvc.On("SetExchangeRate", mock.Anything, "EUR", mock.Anything, "admin-1").Return(nil, apperrors.ErrInvalidRate).Once()

	w := suite.do(http.MethodPut, "/api/v1/exchange-rates/USD", suite.adminToken, map[string]any{"rate": 530})
	suite.Equal(http.StatusOK, w.Code)
	var rate dto.ExchangeRateResponse
	suite.decode(w, &rate)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(530)))

	w = suite.do(http.MethodPut, "/api/v1/exchange-rates/EUR", suite.adminToken, map[string]any{"rate": 0})
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
