package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/dragonspin/dragonspin/docs"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockSpinHandler := NewMockSpinHandler(ctrl)
	mockReviewHandler := NewMockReviewHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSpinHandler.EXPECT().Execute(gomock.Any(), gomock.Any()).AnyTimes()
	mockSpinHandler.EXPECT().Available(gomock.Any(), gomock.Any()).AnyTimes()
	mockSpinHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	mockSpinHandler.EXPECT().Unlock(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().Current(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		SpinHandler:    mockSpinHandler,
		ReviewHandler:  mockReviewHandler,
		TaskHandler:    mockTaskHandler,
		PaymentHandler: mockPaymentHandler,
		AdminIDs:       []int{99},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/webhook/fendpay", http.StatusOK},
		{"POST", "/api/spin/", http.StatusUnauthorized},
		{"GET", "/api/spin/available", http.StatusUnauthorized},
		{"GET", "/api/spin/history", http.StatusUnauthorized},
		{"POST", "/api/spin/unlock", http.StatusUnauthorized},
		{"GET", "/api/task/current", http.StatusUnauthorized},
		{"POST", "/api/payment/order", http.StatusUnauthorized},
		{"GET", "/api/payment/status", http.StatusUnauthorized},
		{"GET", "/api/payment/history", http.StatusUnauthorized},
		{"POST", "/api/admin/spin/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/spin/reject", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("Review routes refuse authenticated non-reviewers", func(t *testing.T) {
		token, err := (&auth.JWTService{}).GenerateJWT(1, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		for _, url := range []string{"/api/admin/spin/approve", "/api/admin/spin/reject"} {
			req := httptest.NewRequest(http.MethodPost, url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code, url)
		}
	})

	t.Run("Review routes admit allowlisted reviewers", func(t *testing.T) {
		token, err := (&auth.JWTService{}).GenerateJWT(99, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/spin/approve", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
