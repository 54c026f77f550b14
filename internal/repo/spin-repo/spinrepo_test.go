package spinrepo

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

var spinRowColumns = []string{
	"id", "user_id", "entitlement_id", "prize_amount", "prize_type", "status",
	"requires_tasks", "tasks_completed", "requires_review", "random_value", "server_nonce",
	"reviewed_by", "reviewed_at", "review_notes", "created_at", "unlocked_at",
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

	spin := &domain.Spin{
		UserID:        1,
		EntitlementID: 10,
		PrizeAmount:   88,
		PrizeType:     "weighted",
		Status:        domain.SpinStatusLocked,
		RequiresTasks: true,
		RandomValue:   499999,
		ServerNonce:   "abcd",
	}

	t.Run("Spin inserted", func(t *testing.T) {
		rows := pgxmock.NewRows(spinRowColumns).
			AddRow(42, 1, 10, 88.0, "weighted", domain.SpinStatusLocked,
				true, false, false, int64(499999), "abcd", nil, nil, "", now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO spins")).
			WithArgs(1, 10, 88.0, "weighted", domain.SpinStatusLocked,
				true, false, false, int64(499999), "abcd").
			WillReturnRows(rows)

		created, err := repo.Insert(context.Background(), spin)
		assert.NoError(t, err)
		assert.Equal(t, 42, created.ID)
		assert.Equal(t, 88.0, created.PrizeAmount)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO spins")).
			WithArgs(1, 10, 88.0, "weighted", domain.SpinStatusLocked,
				true, false, false, int64(499999), "abcd").
			WillReturnError(errors.New("database error"))

		created, err := repo.Insert(context.Background(), spin)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_CountByUser(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Rejected spins are excluded", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status <> 'rejected'")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountByUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status <> 'rejected'")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountByUser(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Row locked", func(t *testing.T) {
		rows := pgxmock.NewRows(spinRowColumns).
			AddRow(42, 1, 10, 888.0, "weighted", domain.SpinStatusPendingReview,
				true, false, true, int64(1), "abcd", nil, nil, "", now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(42).
			WillReturnRows(rows)

		spin, err := repo.GetForUpdate(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.SpinStatusPendingReview, spin.Status)
		assert.True(t, spin.RequiresReview)
	})

	t.Run("Spin not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		spin, err := repo.GetForUpdate(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, spin)
	})
}

func TestRepository_MarkUnlocked(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'unlocked'")).
		WithArgs(42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkUnlocked(context.Background(), 42))
}

func TestRepository_SetReview(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, reviewed_by = $2")).
		WithArgs(domain.SpinStatusRejected, 9, "fraud", 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetReview(context.Background(), 42, domain.SpinStatusRejected, 9, "fraud"))
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(spinRowColumns).
		AddRow(42, 1, 10, 88.0, "weighted", domain.SpinStatusUnlocked,
			true, true, false, int64(1), "abcd", nil, nil, "", now, &now).
		AddRow(41, 1, 9, 9900.0, "preset", domain.SpinStatusLocked,
			true, false, false, int64(2), "efgh", nil, nil, "", now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(1, 50).
		WillReturnRows(rows)

	spins, err := repo.ListByUser(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Len(t, spins, 2)
	assert.Equal(t, 42, spins[0].ID)
	assert.Equal(t, "preset", spins[1].PrizeType)
}
