package balancerepo

import (
	"context"

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

// AppendChange writes one row of the append-only balance audit trail.
func (r *Repository) AppendChange(ctx context.Context, ch *domain.BalanceChange) error {
	query := `
        INSERT INTO balance_changes (user_id, change_type, amount, balance_before,
            balance_after, reference_type, reference_id, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, ch.UserID, ch.ChangeType, ch.Amount,
		ch.BalanceBefore, ch.BalanceAfter, ch.ReferenceType, ch.ReferenceID, ch.Notes)
	if err != nil {
		zap.L().Error("can't append balance change", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.BalanceChange, error) {
	query := `
        SELECT id, user_id, change_type, amount, balance_before, balance_after,
            reference_type, reference_id, notes, created_at
        FROM balance_changes
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't list balance changes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var changes []domain.BalanceChange
	for rows.Next() {
		var ch domain.BalanceChange
		err := rows.Scan(&ch.ID, &ch.UserID, &ch.ChangeType, &ch.Amount, &ch.BalanceBefore,
			&ch.BalanceAfter, &ch.ReferenceType, &ch.ReferenceID, &ch.Notes, &ch.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan balance change row", zap.Error(err))
			return nil, err
		}
		changes = append(changes, ch)
	}
	return changes, nil
}
