package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const paymentColumns = `id, user_id, provider_name, provider_tx_id, provider_order_id,
        amount, currency, status, used, used_at, callback_payload, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.ProviderName, &p.ProviderTxID, &p.ProviderOrderID,
		&p.Amount, &p.Currency, &p.Status, &p.Used, &p.UsedAt, &p.CallbackPayload, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByProviderOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE provider_order_id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by provider order id", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByProviderTxID(ctx context.Context, txID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE provider_tx_id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, txID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by provider tx id", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (user_id, provider_name, provider_tx_id, provider_order_id,
            amount, currency, status, callback_payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + paymentColumns + `
    `
	created, err := scanPayment(r.db.QueryRow(ctx, query, p.UserID, p.ProviderName,
		p.ProviderTxID, p.ProviderOrderID, p.Amount, p.Currency, p.Status, p.CallbackPayload))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicatePayment
		}
		zap.L().Error("can't insert payment", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.UserID, &p.ProviderName, &p.ProviderTxID, &p.ProviderOrderID,
			&p.Amount, &p.Currency, &p.Status, &p.Used, &p.UsedAt, &p.CallbackPayload, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) CreateSession(ctx context.Context, s *domain.GameSession) (*domain.GameSession, error) {
	query := `
        INSERT INTO game_sessions (user_id, game_mode, payment_status, external_order_id, provider_order_no)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, game_mode, payment_status, external_order_id, provider_order_no, payment_id, created_at
    `
	row := r.db.QueryRow(ctx, query, s.UserID, s.GameMode, s.PaymentStatus, s.ExternalOrderID, s.ProviderOrderNo)
	var created domain.GameSession
	err := row.Scan(&created.ID, &created.UserID, &created.GameMode, &created.PaymentStatus,
		&created.ExternalOrderID, &created.ProviderOrderNo, &created.PaymentID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create game session", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindSessionByOrderID(ctx context.Context, externalOrderID string) (*domain.GameSession, error) {
	query := `
        SELECT id, user_id, game_mode, payment_status, external_order_id, provider_order_no, payment_id, created_at
        FROM game_sessions
        WHERE external_order_id = $1
    `
	row := r.db.QueryRow(ctx, query, externalOrderID)
	var s domain.GameSession
	err := row.Scan(&s.ID, &s.UserID, &s.GameMode, &s.PaymentStatus,
		&s.ExternalOrderID, &s.ProviderOrderNo, &s.PaymentID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find game session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateSessionPayment(ctx context.Context, sessionID int, status string, paymentID *int) error {
	query := `
        UPDATE game_sessions
        SET payment_status = $1, payment_id = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, status, paymentID, sessionID); err != nil {
		zap.L().Error("can't update game session payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetSessionProviderOrder(ctx context.Context, sessionID int, providerOrderNo string) error {
	query := `
        UPDATE game_sessions
        SET provider_order_no = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, providerOrderNo, sessionID); err != nil {
		zap.L().Error("can't set session provider order", zap.Error(err))
		return err
	}
	return nil
}
