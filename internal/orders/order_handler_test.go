package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	custom_error "github.com/mEdHaT33/Arkan/pkg/errors"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/pipeline"
)

type MockOrdersGateway struct {
	mock.Mock
}

func (m *MockOrdersGateway) ListByStatus(ctx context.Context, status pipeline.Status) ([]models.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrdersGateway) DesignerTeamOrders(ctx context.Context, username string) ([]models.Order, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrdersGateway) DesignerQueue(ctx context.Context, status pipeline.Status) ([]models.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrdersGateway) Designers(ctx context.Context) ([]models.Designer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Designer), args.Error(1)
}

func (m *MockOrdersGateway) AssignDesigner(ctx context.Context, orderID int, designer string) error {
	args := m.Called(ctx, orderID, designer)
	return args.Error(0)
}

func (m *MockOrdersGateway) Create(ctx context.Context, input remote.CreateOrderInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockOrdersGateway) UploadFile(ctx context.Context, orderID int, field pipeline.FileField, uploadedBy string, file remote.FileUpload) (string, error) {
	args := m.Called(ctx, orderID, field, uploadedBy, file)
	return args.String(0), args.Error(1)
}

func (m *MockOrdersGateway) Review(ctx context.Context, orderID int, action pipeline.Action) error {
	args := m.Called(ctx, orderID, action)
	return args.Error(0)
}

func (m *MockOrdersGateway) ApproveProva(ctx context.Context, orderID int, approvedBy string) error {
	args := m.Called(ctx, orderID, approvedBy)
	return args.Error(0)
}

func setupTestContext(role string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("username", "tester")
	c.Set("role", role)
	return c, w
}

func newTestHandler(gateway *MockOrdersGateway) *OrdersHandler {
	return NewHandler(gateway, auditlog.NewAuditLog(zap.NewNop()))
}

func TestListOrdersAnnotations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	mockGateway.On("ListByStatus", mock.Anything, pipeline.StatusUnknown).Return([]models.Order{
		{OrderID: models.FlexInt(1), Status: "design phase"},
		{OrderID: models.FlexInt(2), Status: "prova uploaded"},
		{OrderID: models.FlexInt(3), Status: "prova file done - sent to design manager"},
		{OrderID: models.FlexInt(4), Status: "archived by someone"},
	}, nil)

	c, w := setupTestContext("admin")
	c.Request = httptest.NewRequest("GET", "/api/orders", nil)

	handler.ListOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []struct {
			OrderID         int      `json:"order_id"`
			NextField       string   `json:"next_field"`
			ReviewActions   []string `json:"review_actions"`
			CanApproveProva bool     `json:"can_approve_prova"`
		} `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 4)

	assert.Equal(t, "prova_file", resp.Orders[0].NextField)
	assert.False(t, resp.Orders[0].CanApproveProva)

	assert.Empty(t, resp.Orders[1].NextField)
	assert.True(t, resp.Orders[1].CanApproveProva)

	assert.Equal(t, []string{"approve", "needs_edit"}, resp.Orders[2].ReviewActions)

	// Unrecognized status renders display-only.
	assert.Empty(t, resp.Orders[3].NextField)
	assert.Empty(t, resp.Orders[3].ReviewActions)
	assert.False(t, resp.Orders[3].CanApproveProva)

	mockGateway.AssertExpectations(t)
}

func TestListOrdersRejectsUnknownFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	c, w := setupTestContext("admin")
	c.Request = httptest.NewRequest("GET", "/api/orders?status=archived", nil)

	handler.ListOrders(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGateway.AssertNotCalled(t, "ListByStatus")
}

func TestListOrdersBackendRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	mockGateway.On("ListByStatus", mock.Anything, mock.Anything).
		Return(nil, &custom_error.RemoteError{Endpoint: "get_orders_by_status.php", Status: 200, Message: "no such client"})

	c, w := setupTestContext("admin")
	c.Request = httptest.NewRequest("GET", "/api/orders", nil)

	handler.ListOrders(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "no such client")
}

func TestListOrdersNetworkError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	mockGateway.On("ListByStatus", mock.Anything, mock.Anything).
		Return(nil, &custom_error.TransportError{Endpoint: "get_orders_by_status.php"})

	c, w := setupTestContext("admin")
	c.Request = httptest.NewRequest("GET", "/api/orders", nil)

	handler.ListOrders(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "network error")
}

func TestReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		orderID        string
		action         string
		setupMock      func(m *MockOrdersGateway)
		expectedStatus int
	}{
		{
			name:    "approve forwarded",
			orderID: "42",
			action:  "approve",
			setupMock: func(m *MockOrdersGateway) {
				m.On("Review", mock.Anything, 42, pipeline.ActionApprove).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "needs edit forwarded",
			orderID: "42",
			action:  "needs_edit",
			setupMock: func(m *MockOrdersGateway) {
				m.On("Review", mock.Anything, 42, pipeline.ActionNeedsEdit).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown action blocked locally",
			orderID:        "42",
			action:         "reject",
			setupMock:      func(m *MockOrdersGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid order id",
			orderID:        "abc",
			action:         "approve",
			setupMock:      func(m *MockOrdersGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "backend refuses transition",
			orderID: "42",
			action:  "approve",
			setupMock: func(m *MockOrdersGateway) {
				m.On("Review", mock.Anything, 42, pipeline.ActionApprove).
					Return(&custom_error.RemoteError{Endpoint: "update_order_status.php", Message: "order is not awaiting review"})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockOrdersGateway)
			tt.setupMock(mockGateway)
			handler := newTestHandler(mockGateway)
			c, w := setupTestContext("designer manager")

			body, _ := json.Marshal(map[string]string{"action": tt.action})
			c.Request = httptest.NewRequest("POST", "/api/orders/"+tt.orderID+"/review", bytes.NewBuffer(body))
			c.Params = []gin.Param{{Key: "id", Value: tt.orderID}}

			handler.Review(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestUploadFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildUpload := func(field string) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("field", field)
		part, _ := writer.CreateFormFile("file", "upload.pdf")
		part.Write([]byte("%PDF-1.4"))
		writer.Close()
		return &buf, writer.FormDataContentType()
	}

	t.Run("forwarded with new status", func(t *testing.T) {
		mockGateway := new(MockOrdersGateway)
		mockGateway.On("UploadFile", mock.Anything, 7, pipeline.FieldD3, "tester", mock.Anything).
			Return(string(pipeline.Status3DReview), nil)
		handler := newTestHandler(mockGateway)

		c, w := setupTestContext("designer")
		body, contentType := buildUpload("d3_file")
		c.Request = httptest.NewRequest("POST", "/api/orders/7/files", body)
		c.Request.Header.Set("Content-Type", contentType)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		handler.UploadFile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "3d file done - sent to design manager")
		mockGateway.AssertExpectations(t)
	})

	t.Run("unexpected backend status reflected verbatim", func(t *testing.T) {
		mockGateway := new(MockOrdersGateway)
		mockGateway.On("UploadFile", mock.Anything, 7, pipeline.FieldD3, "tester", mock.Anything).
			Return("brief uploaded v2", nil)
		handler := newTestHandler(mockGateway)

		c, w := setupTestContext("designer")
		body, contentType := buildUpload("d3_file")
		c.Request = httptest.NewRequest("POST", "/api/orders/7/files", body)
		c.Request.Header.Set("Content-Type", contentType)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		handler.UploadFile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"new_status":"brief uploaded v2"`)
		mockGateway.AssertExpectations(t)
	})

	t.Run("unknown field blocked locally", func(t *testing.T) {
		mockGateway := new(MockOrdersGateway)
		handler := newTestHandler(mockGateway)

		c, w := setupTestContext("designer")
		body, contentType := buildUpload("sketch_file")
		c.Request = httptest.NewRequest("POST", "/api/orders/7/files", body)
		c.Request.Header.Set("Content-Type", contentType)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		handler.UploadFile(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockGateway.AssertNotCalled(t, "UploadFile")
	})
}

func TestApproveProva(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	mockGateway.On("ApproveProva", mock.Anything, 9, "tester").Return(nil)
	handler := newTestHandler(mockGateway)

	c, w := setupTestContext("account manager")
	c.Request = httptest.NewRequest("POST", "/api/orders/9/approve-prova", nil)
	c.Params = []gin.Param{{Key: "id", Value: "9"}}

	handler.ApproveProva(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockGateway.AssertExpectations(t)
}

func TestAssignDesigner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        map[string]string
		setupMock      func(m *MockOrdersGateway)
		expectedStatus int
	}{
		{
			name:    "assigned",
			payload: map[string]string{"assigned_to": "sara"},
			setupMock: func(m *MockOrdersGateway) {
				m.On("AssignDesigner", mock.Anything, 5, "sara").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing designer",
			payload:        map[string]string{},
			setupMock:      func(m *MockOrdersGateway) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockOrdersGateway)
			tt.setupMock(mockGateway)
			handler := newTestHandler(mockGateway)
			c, w := setupTestContext("designer manager")

			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest("POST", "/api/orders/5/assign", bytes.NewBuffer(body))
			c.Params = []gin.Param{{Key: "id", Value: "5"}}

			handler.AssignDesigner(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestDesignerTeamScopesToOwnQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	mockGateway.On("DesignerTeamOrders", mock.Anything, "tester").Return([]models.Order{}, nil)
	handler := newTestHandler(mockGateway)

	// A designer asking for someone else's queue still gets their own.
	c, w := setupTestContext("designer")
	c.Request = httptest.NewRequest("GET", "/api/orders/designer-team?username="+url.QueryEscape("sara"), nil)

	handler.DesignerTeam(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockGateway.AssertExpectations(t)
}

func TestDesignerTeamTabFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	mockGateway.On("DesignerTeamOrders", mock.Anything, "tester").Return([]models.Order{
		{OrderID: 1, Status: "design phase"},
		{OrderID: 2, Status: "waiting for 3d"},
	}, nil)
	handler := newTestHandler(mockGateway)

	c, w := setupTestContext("designer")
	c.Request = httptest.NewRequest("GET", "/api/orders/designer-team?tab="+url.QueryEscape("waiting for 3d"), nil)

	handler.DesignerTeam(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []orderView `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, 2, int(resp.Orders[0].OrderID))
}

func TestCreateOrderRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("client_id", "7")
	writer.Close()

	c, w := setupTestContext("account manager")
	c.Request = httptest.NewRequest("POST", "/api/orders", &buf)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGateway.AssertNotCalled(t, "Create")
}

func TestCreateOrderRequiresClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockGateway := new(MockOrdersGateway)
	handler := newTestHandler(mockGateway)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("has_3d", "1")
	writer.Close()

	c, w := setupTestContext("account manager")
	c.Request = httptest.NewRequest("POST", "/api/orders", &buf)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGateway.AssertNotCalled(t, "Create")
}
