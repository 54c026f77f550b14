package auditrepo

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

func (r *Repository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
        INSERT INTO audit_logs (actor_id, actor_type, action, target_type, target_id, details, success)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, entry.ActorID, entry.ActorType, entry.Action,
		entry.TargetType, entry.TargetID, entry.Details, entry.Success)
	if err != nil {
		zap.L().Error("can't insert audit entry", zap.Error(err))
		return err
	}
	return nil
}
