package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var userRowColumns = []string{
	"id", "login", "password_hash", "is_banned", "balance",
	"locked_balance", "available_spins", "total_paid_plays", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRowColumns).
					AddRow(1, "test_user", "hashed_password", false, 10.5, 99.0, 2, 1, now)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("test_user").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:             1,
				Login:          "test_user",
				PasswordHash:   "hashed_password",
				Balance:        10.5,
				LockedBalance:  99.0,
				AvailableSpins: 2,
				TotalPaidPlays: 1,
				CreatedAt:      now,
			},
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("test_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Login:        "new_user",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows(userRowColumns).
					AddRow(1, "new_user", "hashed_password", false, 0.0, 0.0, 0, 0, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
					WithArgs("new_user", "hashed_password").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "new_user",
				PasswordHash: "hashed_password",
				CreatedAt:    now,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Login:        "new_user",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
					WithArgs("new_user", "hashed_password").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Row locked", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow(1, "test_user", "hashed_password", false, 0.0, 0.0, 1, 0, now)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(rows)

		user, err := repo.GetForUpdate(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, 1, user.AvailableSpins)
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetForUpdate(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Counters(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("AdjustAvailableSpins", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET available_spins = available_spins + $1")).
			WithArgs(-1, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.AdjustAvailableSpins(context.Background(), 1, -1))
	})

	t.Run("SetAvailableSpins", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET available_spins = $1")).
			WithArgs(5, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetAvailableSpins(context.Background(), 1, 5))
	})

	t.Run("IncrementPaidPlays", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET total_paid_plays = total_paid_plays + 1")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.IncrementPaidPlays(context.Background(), 1))
	})

	t.Run("UpdateBalances", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET balance = $1, locked_balance = $2")).
			WithArgs(10.0, 5.0, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateBalances(context.Background(), 1, 10.0, 5.0))
	})
}
