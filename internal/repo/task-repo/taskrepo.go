package taskrepo

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

func (r *Repository) GetProgress(ctx context.Context, userID int) (*domain.TaskProgress, error) {
	query := `
        SELECT user_id, task_index, progress, total_reward, completed_tasks, updated_at
        FROM task_progress
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var p domain.TaskProgress
	err := row.Scan(&p.UserID, &p.TaskIndex, &p.Progress, &p.TotalReward, &p.CompletedTasks, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get task progress", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateProgress(ctx context.Context, userID int) (*domain.TaskProgress, error) {
	query := `
        INSERT INTO task_progress (user_id, task_index, progress, total_reward, completed_tasks)
        VALUES ($1, 0, 0, 0, 0)
        RETURNING user_id, task_index, progress, total_reward, completed_tasks, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var p domain.TaskProgress
	err := row.Scan(&p.UserID, &p.TaskIndex, &p.Progress, &p.TotalReward, &p.CompletedTasks, &p.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create task progress", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, p *domain.TaskProgress) error {
	query := `
        UPDATE task_progress
        SET task_index = $1, progress = $2, total_reward = $3, completed_tasks = $4, updated_at = NOW()
        WHERE user_id = $5
    `
	_, err := r.db.Exec(ctx, query, p.TaskIndex, p.Progress, p.TotalReward, p.CompletedTasks, p.UserID)
	if err != nil {
		zap.L().Error("can't update task progress", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) InsertCompletion(ctx context.Context, c *domain.TaskCompletion) error {
	query := `
        INSERT INTO task_completion_log (user_id, task_index, task_type, completion_method,
            reward, total_before, total_after)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, c.UserID, c.TaskIndex, c.TaskType, c.Method,
		c.Reward, c.TotalBefore, c.TotalAfter)
	if err != nil {
		zap.L().Error("can't insert task completion", zap.Error(err))
		return err
	}
	return nil
}
