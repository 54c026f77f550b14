package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var paymentRowColumns = []string{
	"id", "user_id", "provider_name", "provider_tx_id", "provider_order_id",
	"amount", "currency", "status", "used", "used_at", "callback_payload", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := &domain.Payment{
		UserID:          7,
		ProviderName:    "fendpay",
		ProviderTxID:    "P123",
		ProviderOrderID: "GAME_7_abc",
		Amount:          1000,
		Currency:        "INR",
		Status:          domain.PaymentStatusConfirmed,
		CallbackPayload: "{}",
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		result      *domain.Payment
	}{
		{
			name: "Payment inserted",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRowColumns).
					AddRow(15, 7, "fendpay", "P123", "GAME_7_abc", 1000.0, "INR",
						domain.PaymentStatusConfirmed, false, nil, "{}", now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(7, "fendpay", "P123", "GAME_7_abc", 1000.0, "INR",
						domain.PaymentStatusConfirmed, "{}").
					WillReturnRows(rows)
			},
			result: &domain.Payment{
				ID:              15,
				UserID:          7,
				ProviderName:    "fendpay",
				ProviderTxID:    "P123",
				ProviderOrderID: "GAME_7_abc",
				Amount:          1000,
				Currency:        "INR",
				Status:          domain.PaymentStatusConfirmed,
				CallbackPayload: "{}",
				CreatedAt:       now,
			},
		},
		{
			name: "Unique violation maps to duplicate payment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(7, "fendpay", "P123", "GAME_7_abc", 1000.0, "INR",
						domain.PaymentStatusConfirmed, "{}").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrDuplicatePayment,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(7, "fendpay", "P123", "GAME_7_abc", 1000.0, "INR",
						domain.PaymentStatusConfirmed, "{}").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Insert(context.Background(), payment)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrDuplicatePayment) {
					assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByProviderTxID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Payment not recorded yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE provider_tx_id = $1")).
			WithArgs("P123").
			WillReturnError(pgx.ErrNoRows)

		payment, err := repo.FindByProviderTxID(context.Background(), "P123")
		assert.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE provider_tx_id = $1")).
			WithArgs("P123").
			WillReturnError(errors.New("database error"))

		payment, err := repo.FindByProviderTxID(context.Background(), "P123")
		assert.Error(t, err)
		assert.Nil(t, payment)
	})
}

func TestRepository_Sessions(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	sessionColumns := []string{
		"id", "user_id", "game_mode", "payment_status",
		"external_order_id", "provider_order_no", "payment_id", "created_at",
	}

	t.Run("CreateSession", func(t *testing.T) {
		rows := pgxmock.NewRows(sessionColumns).
			AddRow(3, 7, "paid", domain.PaymentStatusPending, "GAME_7_abc", "", nil, now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_sessions")).
			WithArgs(7, "paid", domain.PaymentStatusPending, "GAME_7_abc", "").
			WillReturnRows(rows)

		session, err := repo.CreateSession(context.Background(), &domain.GameSession{
			UserID:          7,
			GameMode:        "paid",
			PaymentStatus:   domain.PaymentStatusPending,
			ExternalOrderID: "GAME_7_abc",
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, session.ID)
	})

	t.Run("FindSessionByOrderID not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE external_order_id = $1")).
			WithArgs("GAME_7_missing").
			WillReturnError(pgx.ErrNoRows)

		session, err := repo.FindSessionByOrderID(context.Background(), "GAME_7_missing")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("UpdateSessionPayment", func(t *testing.T) {
		paymentID := 15
		mock.ExpectExec(regexp.QuoteMeta("SET payment_status = $1, payment_id = $2")).
			WithArgs(domain.PaymentStatusConfirmed, &paymentID, 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateSessionPayment(context.Background(), 3, domain.PaymentStatusConfirmed, &paymentID))
	})

	t.Run("SetSessionProviderOrder", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET provider_order_no = $1")).
			WithArgs("P123", 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetSessionProviderOrder(context.Background(), 3, "P123"))
	})
}
