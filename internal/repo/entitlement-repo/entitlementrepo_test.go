package entitlementrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_SelectOldestUnconsumedForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Entitlement
	}{
		{
			name:   "Oldest entitlement found and locked",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "source_kind", "source_id", "consumed", "consumed_at", "created_at"}).
					AddRow(10, 1, domain.SourceFirstPlay, 1, false, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Entitlement{
				ID:         10,
				UserID:     1,
				SourceKind: domain.SourceFirstPlay,
				SourceID:   1,
				CreatedAt:  now,
			},
		},
		{
			name:   "No unconsumed entitlements",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "source_kind", "source_id", "consumed", "consumed_at", "created_at"}))
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SelectOldestUnconsumedForUpdate(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_MarkConsumed(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		consumed  bool
	}{
		{
			name: "Entitlement consumed",
			id:   10,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE spin_entitlements")).
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			consumed: true,
		},
		{
			name: "Already consumed",
			id:   10,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE spin_entitlements")).
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			consumed: false,
		},
		{
			name: "Database error",
			id:   10,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE spin_entitlements")).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			consumed, err := repo.MarkConsumed(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.consumed, consumed)
			}
		})
	}
}

func TestRepository_CountUnconsumed(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnconsumed(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_FindMismatchedUsers(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		limit     int
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name:  "Mismatched users found",
			limit: 100,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(7)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.available_spins <> COALESCE(e.cnt, 0)")).
					WithArgs(100).
					WillReturnRows(rows)
			},
			result: []int{1, 7},
		},
		{
			name:  "No drift",
			limit: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.available_spins <> COALESCE(e.cnt, 0)")).
					WithArgs(100).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			result: nil,
		},
		{
			name:  "Database error",
			limit: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.available_spins <> COALESCE(e.cnt, 0)")).
					WithArgs(100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindMismatchedUsers(context.Background(), tt.limit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
