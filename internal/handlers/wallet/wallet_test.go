package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/walletservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return fmt.Sprintf("decimal equal to %s", m.want) }

func amount(s string) gomock.Matcher { return decimalMatcher{want: decimal.RequireFromString(s)} }

func userCtx(id int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, id)
}

func testWallet(balance string) *domain.Wallet {
	return &domain.Wallet{
		ID:      3,
		UserID:  1,
		Balance: decimal.RequireFromString(balance),
		Transactions: []domain.Transaction{
			{ID: 9, WalletID: 3, Amount: decimal.NewFromInt(25), Type: domain.TransactionCredit, Description: "Funds added"},
		},
	}
}

func TestGetWallet(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Wallet returned",
			prepareMock: func() {
				service.EXPECT().GetWallet(userCtx(1), 1).Return(testWallet("25"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetWallet(userCtx(1), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/wallet/1", nil).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.GetWallet(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.WalletResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.Balance.Equal(decimal.NewFromInt(25)))
				assert.Len(t, resp.Transactions, 1)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Defaults",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userCtx(1), 1, 50, 0).Return([]domain.Transaction{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Explicit paging",
			query: "?limit=10&offset=20",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userCtx(1), 1, 10, 20).Return([]domain.Transaction{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad limit",
			query:        "?limit=ten",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad offset",
			query:        "?offset=x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userCtx(1), 1, 50, 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/wallet/1/transactions"+tt.query, nil).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.GetTransactions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddFunds(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Credit applied",
			body: `{"amount":25.5,"description":"Top up"}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(userCtx(1), 1, amount("25.5"), "Top up").Return(testWallet("25.5"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount as string",
			body: `{"amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(userCtx(1), 1, amount("10"), "").Return(testWallet("10"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(userCtx(1), 1, amount("0"), "").Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name:          "Garbage amount",
			body:          `{"amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name: "Internal error",
			body: `{"amount":5}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(userCtx(1), 1, amount("5"), "").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/wallet/1/add", bytes.NewReader([]byte(tt.body))).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.AddFunds(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.WalletOperationResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Funds added successfully", resp.Message)
		})
	}
}

func TestWithdraw(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Debit applied",
			body: `{"amount":10,"payoutCard":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().WithdrawFunds(userCtx(1), 1, amount("10"), "", "4561261212345467").Return(testWallet("15"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().WithdrawFunds(userCtx(1), 1, amount("1000"), "", "").Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient balance",
		},
		{
			name: "No wallet",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().WithdrawFunds(userCtx(1), 1, amount("1"), "", "").Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Wallet not found",
		},
		{
			name: "Bad card",
			body: `{"amount":1,"payoutCard":"1234"}`,
			prepareMock: func() {
				service.EXPECT().WithdrawFunds(userCtx(1), 1, amount("1"), "", "1234").Return(nil, walletservice.ErrInvalidCard)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payout card number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/wallet/1/withdraw", bytes.NewReader([]byte(tt.body))).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.Withdraw(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
