package receipts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/models"
)

type MockReceiptsGateway struct {
	mock.Mock
}

func (m *MockReceiptsGateway) List(ctx context.Context, filter remote.ReceiptFilter) ([]models.PartyReceipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PartyReceipt), args.Error(1)
}

func (m *MockReceiptsGateway) Create(ctx context.Context, input remote.ReceiptInput) (*models.Party, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Party), args.Error(1)
}

func (m *MockReceiptsGateway) SubmitPurchase(ctx context.Context, input remote.PurchaseInput) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("username", "tester")
	c.Set("role", "finance")
	return c, w
}

func newTestHandler(gateway *MockReceiptsGateway) *ReceiptsHandler {
	return NewHandler(gateway, auditlog.NewAuditLog(zap.NewNop()))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateReceiptGeneratesReference(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockReceiptsGateway)
	mockGateway.On("Create", mock.Anything, mock.MatchedBy(func(input remote.ReceiptInput) bool {
		return input.Reference != "" && input.CreatedBy == "tester"
	})).Return(&models.Party{ID: 4, Name: "Acme", Type: "client", Balance: dec("150")}, nil)
	handler := newTestHandler(mockGateway)

	c, w := setupTestContext()
	body, _ := json.Marshal(remote.ReceiptInput{
		PartyType: "client",
		PartyID:   4,
		Direction: "in",
		Account:   "cash",
		Amount:    dec("150"),
		TxnDate:   "2026-03-01",
	})
	c.Request = httptest.NewRequest("POST", "/api/receipts", bytes.NewBuffer(body))

	handler.CreateReceipt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reference string        `json:"reference"`
		Party     *models.Party `json:"party"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reference, "RCPT-")
	assert.NotNil(t, resp.Party)
	assert.Equal(t, "150", resp.Party.Balance.String())
	mockGateway.AssertExpectations(t)
}

func TestCreateReceiptKeepsGivenReference(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockReceiptsGateway)
	mockGateway.On("Create", mock.Anything, mock.MatchedBy(func(input remote.ReceiptInput) bool {
		return input.Reference == "BANK-0042"
	})).Return(&models.Party{}, nil)
	handler := newTestHandler(mockGateway)

	c, w := setupTestContext()
	body, _ := json.Marshal(remote.ReceiptInput{
		PartyType: "vendor",
		PartyID:   2,
		Direction: "out",
		Account:   "bank",
		Amount:    dec("90"),
		Reference: "BANK-0042",
	})
	c.Request = httptest.NewRequest("POST", "/api/receipts", bytes.NewBuffer(body))

	handler.CreateReceipt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockGateway.AssertExpectations(t)
}

func TestCreateReceiptValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := remote.ReceiptInput{
		PartyType: "client",
		PartyID:   4,
		Direction: "in",
		Account:   "cash",
		Amount:    dec("10"),
	}

	tests := []struct {
		name   string
		mutate func(input *remote.ReceiptInput)
	}{
		{name: "missing party", mutate: func(input *remote.ReceiptInput) { input.PartyID = 0 }},
		{name: "bad party type", mutate: func(input *remote.ReceiptInput) { input.PartyType = "partner" }},
		{name: "bad direction", mutate: func(input *remote.ReceiptInput) { input.Direction = "up" }},
		{name: "bad account", mutate: func(input *remote.ReceiptInput) { input.Account = "vault" }},
		{name: "zero amount", mutate: func(input *remote.ReceiptInput) { input.Amount = dec("0") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockReceiptsGateway)
			handler := newTestHandler(mockGateway)
			c, w := setupTestContext()

			input := valid
			tt.mutate(&input)
			body, _ := json.Marshal(input)
			c.Request = httptest.NewRequest("POST", "/api/receipts", bytes.NewBuffer(body))

			handler.CreateReceipt(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockGateway.AssertNotCalled(t, "Create")
		})
	}
}

func TestSubmitPurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	line := models.PurchaseReceiptItem{ItemName: "A4 paper", Qty: dec("10"), Price: dec("3.5")}

	tests := []struct {
		name           string
		payload        remote.PurchaseInput
		setupMock      func(m *MockReceiptsGateway)
		expectedStatus int
	}{
		{
			name:    "submitted",
			payload: remote.PurchaseInput{VendorID: 2, Date: "2024-03-01", Account: "bank", Items: []models.PurchaseReceiptItem{line}},
			setupMock: func(m *MockReceiptsGateway) {
				m.On("SubmitPurchase", mock.Anything, mock.Anything).Return(88, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing vendor",
			payload:        remote.PurchaseInput{Items: []models.PurchaseReceiptItem{line}},
			setupMock:      func(m *MockReceiptsGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing date",
			payload:        remote.PurchaseInput{VendorID: 2, Items: []models.PurchaseReceiptItem{line}},
			setupMock:      func(m *MockReceiptsGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no lines",
			payload:        remote.PurchaseInput{VendorID: 2, Date: "2024-03-01"},
			setupMock:      func(m *MockReceiptsGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "line without quantity",
			payload: remote.PurchaseInput{VendorID: 2, Date: "2024-03-01", Items: []models.PurchaseReceiptItem{
				{ItemName: "A4 paper", Qty: dec("0")},
			}},
			setupMock:      func(m *MockReceiptsGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockReceiptsGateway)
			tt.setupMock(mockGateway)
			handler := newTestHandler(mockGateway)
			c, w := setupTestContext()

			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest("POST", "/api/purchase-receipts", bytes.NewBuffer(body))

			handler.SubmitPurchase(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockGateway.AssertExpectations(t)

			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"receipt_id":88`)
			}
		})
	}
}
