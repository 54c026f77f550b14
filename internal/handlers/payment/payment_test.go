package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/dto"
	"github.com/dragonspin/dragonspin/internal/service/paymentservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.CreateOrderResponseDTO
	}{
		{
			name: "Order created",
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(authCtx(), 1).
					Return(&paymentservice.OrderResult{
						OrderID: "GAME_1_abc",
						PayURL:  "https://kspay.shop/pay/abc",
						Amount:  1000,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CreateOrderResponseDTO{
				OrderID: "GAME_1_abc",
				PayURL:  "https://kspay.shop/pay/abc",
				Amount:  1000,
			},
		},
		{
			name: "Payment provider unavailable",
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(authCtx(), 1).
					Return(nil, paymentservice.ErrPaymentProviderFailure)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "payment provider unavailable",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(authCtx(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/payment/order", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.CreateOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.CreateOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Order status returned",
			target: "/payment/status?order_id=GAME_1_abc",
			prepareMock: func() {
				service.EXPECT().
					OrderStatus(authCtx(), 1, "GAME_1_abc").
					Return(&paymentservice.StatusResult{
						OrderID: "GAME_1_abc",
						Status:  domain.PaymentStatusConfirmed,
						Amount:  1000,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing order id",
			target:       "/payment/status",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Order not found",
			target: "/payment/status?order_id=GAME_1_abc",
			prepareMock: func() {
				service.EXPECT().
					OrderStatus(authCtx(), 1, "GAME_1_abc").
					Return(nil, paymentservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "payment order not found",
		},
		{
			name:   "Payment provider unavailable",
			target: "/payment/status?order_id=GAME_1_abc",
			prepareMock: func() {
				service.EXPECT().
					OrderStatus(authCtx(), 1, "GAME_1_abc").
					Return(nil, paymentservice.ErrPaymentProviderFailure)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "payment provider unavailable",
		},
		{
			name:   "Internal server error",
			target: "/payment/status?order_id=GAME_1_abc",
			prepareMock: func() {
				service.EXPECT().
					OrderStatus(authCtx(), 1, "GAME_1_abc").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.Status(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.OrderStatusDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "GAME_1_abc", body.OrderID)
				assert.Equal(t, domain.PaymentStatusConfirmed, body.Status)
			}
		})
	}
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "Valid callback",
			body: `{"orderNo": "P123", "status": "1"}`,
		},
		{
			name: "Garbage callback still gets the fixed acknowledgement",
			body: "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().
				HandleWebhook(gomock.Any(), []byte(tt.body)).
				Return(paymentservice.Ack)

			r := httptest.NewRequest(http.MethodPost, "/webhook/fendpay", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Webhook(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
			assert.Equal(t, "success", w.Body.String())
		})
	}
}

func TestPaymentHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	t.Run("Successful history retrieval", func(t *testing.T) {
		service.EXPECT().
			History(authCtx(), 1, 50).
			Return([]domain.Payment{
				{
					ProviderOrderID: "GAME_1_abc",
					Amount:          1000,
					Currency:        "INR",
					Status:          domain.PaymentStatusConfirmed,
					CreatedAt:       now,
				},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/payment/history", nil)
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.History(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.PaymentHistoryItemDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "GAME_1_abc", body[0].OrderID)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().History(authCtx(), 1, 50).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/payment/history", nil)
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.History(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
