package spinrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

const spinColumns = `id, user_id, entitlement_id, prize_amount, prize_type, status,
        requires_tasks, tasks_completed, requires_review, random_value, server_nonce,
        reviewed_by, reviewed_at, review_notes, created_at, unlocked_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSpin(row pgx.Row) (*domain.Spin, error) {
	var s domain.Spin
	err := row.Scan(&s.ID, &s.UserID, &s.EntitlementID, &s.PrizeAmount, &s.PrizeType, &s.Status,
		&s.RequiresTasks, &s.TasksCompleted, &s.RequiresReview, &s.RandomValue, &s.ServerNonce,
		&s.ReviewedBy, &s.ReviewedAt, &s.ReviewNotes, &s.CreatedAt, &s.UnlockedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Insert(ctx context.Context, spin *domain.Spin) (*domain.Spin, error) {
	query := `
        INSERT INTO spins (user_id, entitlement_id, prize_amount, prize_type, status,
            requires_tasks, tasks_completed, requires_review, random_value, server_nonce)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + spinColumns + `
    `
	created, err := scanSpin(r.db.QueryRow(ctx, query,
		spin.UserID, spin.EntitlementID, spin.PrizeAmount, spin.PrizeType, spin.Status,
		spin.RequiresTasks, spin.TasksCompleted, spin.RequiresReview, spin.RandomValue, spin.ServerNonce))
	if err != nil {
		zap.L().Error("can't insert spin", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CountByUser counts the user's non-rejected spins; the result seeds the
// 1-based sequence number for the preset prize ladder.
func (r *Repository) CountByUser(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM spins
        WHERE user_id = $1 AND status <> 'rejected'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count spins", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetForUpdate(ctx context.Context, spinID int) (*domain.Spin, error) {
	query := `
        SELECT ` + spinColumns + `
        FROM spins
        WHERE id = $1
        FOR UPDATE
    `
	spin, err := scanSpin(r.db.QueryRow(ctx, query, spinID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock spin row", zap.Error(err))
		return nil, err
	}
	return spin, nil
}

func (r *Repository) MarkUnlocked(ctx context.Context, spinID int) error {
	query := `
        UPDATE spins
        SET status = 'unlocked', tasks_completed = true, unlocked_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, spinID); err != nil {
		zap.L().Error("can't mark spin unlocked", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetReview(ctx context.Context, spinID int, status string, reviewerID int, notes string) error {
	query := `
        UPDATE spins
        SET status = $1, reviewed_by = $2, reviewed_at = NOW(), review_notes = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, status, reviewerID, notes, spinID); err != nil {
		zap.L().Error("can't update spin review state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.Spin, error) {
	query := `
        SELECT ` + spinColumns + `
        FROM spins
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't list spins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var spins []domain.Spin
	for rows.Next() {
		var s domain.Spin
		err := rows.Scan(&s.ID, &s.UserID, &s.EntitlementID, &s.PrizeAmount, &s.PrizeType, &s.Status,
			&s.RequiresTasks, &s.TasksCompleted, &s.RequiresReview, &s.RandomValue, &s.ServerNonce,
			&s.ReviewedBy, &s.ReviewedAt, &s.ReviewNotes, &s.CreatedAt, &s.UnlockedAt)
		if err != nil {
			zap.L().Error("can't scan spin row", zap.Error(err))
			return nil, err
		}
		spins = append(spins, s)
	}
	return spins, nil
}
