package entitlementservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

type EntitlementRepo interface {
	Insert(ctx context.Context, e *domain.Entitlement) (*domain.Entitlement, error)
	CountUnconsumed(ctx context.Context, userID int) (int, error)
}

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	AdjustAvailableSpins(ctx context.Context, userID, delta int) error
	SetAvailableSpins(ctx context.Context, userID, count int) error
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

var (
	ErrUnknownSource = errors.New("unknown entitlement source kind")
	ErrUserNotFound  = errors.New("user not found")
)

type Service struct {
	entitlements EntitlementRepo
	users        UserRepo
	audit        AuditRepo
	txManager    pg.TXManager
}

func New(entitlements EntitlementRepo, users UserRepo, audit AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		entitlements: entitlements,
		users:        users,
		audit:        audit,
		txManager:    txManager,
	}
}

// Grant appends one unconsumed entitlement and bumps the user's counter in
// the same transaction. Deduplication of the granting event is the
// caller's responsibility.
func (s *Service) Grant(ctx context.Context, userID int, source domain.SourceKind, sourceRef int) (*domain.Entitlement, error) {
	if !source.Valid() {
		return nil, ErrUnknownSource
	}

	var granted *domain.Entitlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		e, err := s.entitlements.Insert(ctx, &domain.Entitlement{
			UserID:     userID,
			SourceKind: source,
			SourceID:   sourceRef,
		})
		if err != nil {
			return err
		}
		if err := s.users.AdjustAvailableSpins(ctx, userID, 1); err != nil {
			return err
		}
		granted = e
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant entitlement", zap.Error(err))
		return nil, err
	}

	zap.L().Info("entitlement granted",
		zap.Int("user_id", userID), zap.String("source", string(source)), zap.Int("source_ref", sourceRef))
	return granted, nil
}

// Reconcile heals a drift between the denormalized counter and the ledger.
// The ledger wins when the counter is lower; when the counter is higher,
// synthetic catch-up rows are appended so history is never lost. Every
// correction is audited as an anomaly. The user row stays locked for the
// whole check-and-correct, so concurrent heals of the same drift serialize
// and the second one sees an already consistent state.
func (s *Service) Reconcile(ctx context.Context, userID int) (int, error) {
	var final int
	var healed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		count, err := s.entitlements.CountUnconsumed(ctx, userID)
		if err != nil {
			return err
		}
		if user.AvailableSpins == count {
			final = count
			return nil
		}

		zap.L().Warn("entitlement counter mismatch detected",
			zap.Int("user_id", userID), zap.Int("counter", user.AvailableSpins), zap.Int("ledger", count))

		if user.AvailableSpins > count {
			missing := user.AvailableSpins - count
			for i := 0; i < missing; i++ {
				if _, err := s.entitlements.Insert(ctx, &domain.Entitlement{
					UserID:     userID,
					SourceKind: domain.SourceManual,
				}); err != nil {
					return err
				}
			}
			final = user.AvailableSpins
		} else {
			if err := s.users.SetAvailableSpins(ctx, userID, count); err != nil {
				return err
			}
			final = count
		}
		healed = true

		return s.audit.Insert(ctx, &domain.AuditEntry{
			ActorID:    userID,
			ActorType:  "system",
			Action:     "entitlement_reconciled",
			TargetType: "user",
			TargetID:   userID,
			Details:    fmt.Sprintf(`{"counter":%d,"ledger":%d,"final":%d}`, user.AvailableSpins, count, final),
			Success:    true,
		})
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return 0, err
		}
		zap.L().Error("failed to reconcile entitlements", zap.Error(err))
		return 0, err
	}

	if healed {
		zap.L().Info("entitlements reconciled", zap.Int("user_id", userID), zap.Int("final", final))
	}
	return final, nil
}

// Available returns the number of unconsumed entitlements, healing any
// counter drift on the way.
func (s *Service) Available(ctx context.Context, userID int) (int, error) {
	return s.Reconcile(ctx, userID)
}
