package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, login, password_hash, is_banned, balance, locked_balance, available_spins, total_paid_plays, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.IsBanned,
		&user.Balance, &user.LockedBalance, &user.AvailableSpins, &user.TotalPaidPlays, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE login = $1
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash)
        VALUES ($1, $2)
        RETURNING ` + userColumns + `
	`
	created, err := r.scanUser(r.db.QueryRow(ctx, query, user.Login, user.PasswordHash))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetForUpdate locks the user row for the rest of the transaction. The
// spin engine relies on this to serialize concurrent spins per user.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock user row", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, userID int, balance, locked float64) error {
	query := `
        UPDATE users
        SET balance = $1, locked_balance = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, balance, locked, userID); err != nil {
		zap.L().Error("can't update user balances", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AdjustAvailableSpins(ctx context.Context, userID, delta int) error {
	query := `
        UPDATE users
        SET available_spins = available_spins + $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, delta, userID); err != nil {
		zap.L().Error("can't adjust available spins", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetAvailableSpins(ctx context.Context, userID, count int) error {
	query := `
        UPDATE users
        SET available_spins = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, count, userID); err != nil {
		zap.L().Error("can't set available spins", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementPaidPlays(ctx context.Context, userID int) error {
	query := `
        UPDATE users
        SET total_paid_plays = total_paid_plays + 1
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't increment paid plays", zap.Error(err))
		return err
	}
	return nil
}
