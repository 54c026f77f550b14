package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login": "testuser", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "testpassword", "").
					Return(&domain.User{ID: 1, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(1).Return("generated-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Registration with invite code",
			body: `{"login": "testuser", "password": "testpassword", "invite_code": "inviter"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "testpassword", "inviter").
					Return(&domain.User{ID: 2, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(2).Return("generated-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         "not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login": "testuser", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "testpassword", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Internal server error",
			body: `{"login": "testuser", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "testpassword", "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Error generating token",
			body: `{"login": "testuser", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "testpassword", "").
					Return(&domain.User{ID: 1, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer generated-token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login": "testuser", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "testpassword").
					Return(&domain.User{ID: 1, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(1).Return("generated-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         "not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login": "testuser", "password": "wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
