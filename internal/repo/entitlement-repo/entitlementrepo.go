package entitlementrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, e *domain.Entitlement) (*domain.Entitlement, error) {
	query := `
        INSERT INTO spin_entitlements (user_id, source_kind, source_id)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, source_kind, source_id, consumed, consumed_at, created_at
    `
	row := r.db.QueryRow(ctx, query, e.UserID, e.SourceKind, e.SourceID)
	var created domain.Entitlement
	err := row.Scan(&created.ID, &created.UserID, &created.SourceKind, &created.SourceID,
		&created.Consumed, &created.ConsumedAt, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't insert entitlement", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// SelectOldestUnconsumedForUpdate picks the FIFO entitlement and locks it so
// concurrent spins cannot select the same row. Returns nil when the user has
// no unconsumed entitlements.
func (r *Repository) SelectOldestUnconsumedForUpdate(ctx context.Context, userID int) (*domain.Entitlement, error) {
	query := `
        SELECT id, user_id, source_kind, source_id, consumed, consumed_at, created_at
        FROM spin_entitlements
        WHERE user_id = $1 AND consumed = false
        ORDER BY created_at ASC
        LIMIT 1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var e domain.Entitlement
	err := row.Scan(&e.ID, &e.UserID, &e.SourceKind, &e.SourceID, &e.Consumed, &e.ConsumedAt, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't select entitlement for update", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

// MarkConsumed flips the consumed flag exactly once. Returns false when the
// row was already consumed, so a retried call cannot double-spend it.
func (r *Repository) MarkConsumed(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE spin_entitlements
        SET consumed = true, consumed_at = NOW()
        WHERE id = $1 AND consumed = false
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark entitlement consumed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CountUnconsumed(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM spin_entitlements
        WHERE user_id = $1 AND consumed = false
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unconsumed entitlements", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindMismatchedUsers returns users whose denormalized counter disagrees
// with the ledger. Used by the periodic reconciliation sweep.
func (r *Repository) FindMismatchedUsers(ctx context.Context, limit int) ([]int, error) {
	query := `
        SELECT u.id
        FROM users u
        LEFT JOIN (
            SELECT user_id, COUNT(*) AS cnt
            FROM spin_entitlements
            WHERE consumed = false
            GROUP BY user_id
        ) e ON e.user_id = u.id
        WHERE u.available_spins <> COALESCE(e.cnt, 0)
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't find mismatched users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan mismatched user row", zap.Error(err))
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, nil
}
