package spinservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/dragonspin/dragonspin/internal/config"
	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"
	"go.uber.org/zap"
)

type EntitlementRepo interface {
	SelectOldestUnconsumedForUpdate(ctx context.Context, userID int) (*domain.Entitlement, error)
	MarkConsumed(ctx context.Context, id int) (bool, error)
}

type SpinRepo interface {
	Insert(ctx context.Context, spin *domain.Spin) (*domain.Spin, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	GetForUpdate(ctx context.Context, spinID int) (*domain.Spin, error)
	SetReview(ctx context.Context, spinID int, status string, reviewerID int, notes string) error
	ListByUser(ctx context.Context, userID, limit int) ([]domain.Spin, error)
}

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalances(ctx context.Context, userID int, balance, locked float64) error
	AdjustAvailableSpins(ctx context.Context, userID, delta int) error
}

type BalanceRepo interface {
	AppendChange(ctx context.Context, ch *domain.BalanceChange) error
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// TaskGate is the sequential task ladder the engine reports plays to.
type TaskGate interface {
	RecordCompletion(ctx context.Context, userID int, method domain.CompletionMethod) (*taskservice.CompletionResult, error)
}

// Alerter receives best-effort notifications about prizes held for review.
type Alerter interface {
	LargePrize(userID, spinID int, amount float64)
}

var (
	ErrNoEntitlementAvailable = errors.New("no spin entitlement available")
	ErrUserBanned             = errors.New("user is banned")
	ErrUserNotFound           = errors.New("user not found")
	ErrSpinNotFound           = errors.New("spin not found")
	ErrNotPendingReview       = errors.New("spin is not pending review")
)

// Result is the outcome of one executed spin.
type Result struct {
	SpinID         int
	PrizeAmount    float64
	PrizeType      string
	Status         string
	Sequence       int
	RequiresTasks  bool
	RequiresReview bool
	TaskReward     float64
}

type Service struct {
	entitlements EntitlementRepo
	spins        SpinRepo
	users        UserRepo
	balances     BalanceRepo
	audit        AuditRepo
	gate         TaskGate
	alerter      Alerter
	txManager    pg.TXManager
	cfg          *config.SpinConfig
	draw         drawFunc
}

func New(entitlements EntitlementRepo, spins SpinRepo, users UserRepo, balances BalanceRepo,
	audit AuditRepo, gate TaskGate, alerter Alerter, txManager pg.TXManager, cfg *config.SpinConfig) *Service {
	return &Service{
		entitlements: entitlements,
		spins:        spins,
		users:        users,
		balances:     balances,
		audit:        audit,
		gate:         gate,
		alerter:      alerter,
		txManager:    txManager,
		cfg:          cfg,
		draw:         cryptoDraw,
	}
}

// ExecuteSpin consumes the user's oldest entitlement and resolves a prize
// in one transaction. The user row lock serializes concurrent spins per
// user; the entitlement row lock plus the conditional consume flip make
// consumption exactly-once even under retries.
func (s *Service) ExecuteSpin(ctx context.Context, userID int) (*Result, error) {
	result := &Result{}
	var reviewAmount float64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.IsBanned {
			return ErrUserBanned
		}

		entitlement, err := s.entitlements.SelectOldestUnconsumedForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if entitlement == nil {
			return ErrNoEntitlementAvailable
		}
		consumed, err := s.entitlements.MarkConsumed(ctx, entitlement.ID)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrNoEntitlementAvailable
		}
		if err := s.users.AdjustAvailableSpins(ctx, userID, -1); err != nil {
			return err
		}

		count, err := s.spins.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		seq := count + 1

		amount, policy, draw, err := s.determinePrize(seq)
		if err != nil {
			return err
		}

		status := domain.SpinStatusLocked
		requiresReview := amount >= s.cfg.LargePrizeThreshold
		if requiresReview {
			status = domain.SpinStatusPendingReview
		}

		spin, err := s.spins.Insert(ctx, &domain.Spin{
			UserID:         userID,
			EntitlementID:  entitlement.ID,
			PrizeAmount:    amount,
			PrizeType:      policy,
			Status:         status,
			RequiresTasks:  true,
			RequiresReview: requiresReview,
			RandomValue:    draw,
			ServerNonce:    newServerNonce(),
		})
		if err != nil {
			return err
		}

		lockedBefore := user.LockedBalance
		lockedAfter := lockedBefore + amount
		if err := s.users.UpdateBalances(ctx, userID, user.Balance, lockedAfter); err != nil {
			return err
		}
		if err := s.balances.AppendChange(ctx, &domain.BalanceChange{
			UserID:        userID,
			ChangeType:    domain.ChangeSpinWin,
			Amount:        amount,
			BalanceBefore: lockedBefore,
			BalanceAfter:  lockedAfter,
			ReferenceType: "spin",
			ReferenceID:   spin.ID,
			Notes:         "prize locked pending tasks",
		}); err != nil {
			return err
		}

		completion, err := s.gate.RecordCompletion(ctx, userID, domain.MethodSpin)
		if err != nil {
			return err
		}

		if err := s.audit.Insert(ctx, &domain.AuditEntry{
			ActorID:    userID,
			ActorType:  "user",
			Action:     "spin_executed",
			TargetType: "spin",
			TargetID:   spin.ID,
			Details:    fmt.Sprintf(`{"sequence":%d,"prize":%v,"policy":%q,"draw":%d}`, seq, amount, policy, draw),
			Success:    true,
		}); err != nil {
			return err
		}

		result.SpinID = spin.ID
		result.PrizeAmount = amount
		result.PrizeType = policy
		result.Status = status
		result.Sequence = seq
		result.RequiresTasks = true
		result.RequiresReview = requiresReview
		if completion.TaskCompleted {
			result.TaskReward = completion.Reward
		}
		reviewAmount = amount
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoEntitlementAvailable) || errors.Is(err, ErrUserBanned) || errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		zap.L().Error("failed to execute spin", zap.Error(err))
		return nil, err
	}

	zap.L().Info("spin executed",
		zap.Int("user_id", userID), zap.Int("spin_id", result.SpinID),
		zap.Float64("prize", result.PrizeAmount), zap.String("status", result.Status))

	// Notify only after the transaction committed.
	if result.RequiresReview && s.alerter != nil {
		s.alerter.LargePrize(userID, result.SpinID, reviewAmount)
	}
	return result, nil
}

// ApproveSpin releases a held prize back into the normal task flow.
func (s *Service) ApproveSpin(ctx context.Context, spinID, reviewerID int, notes string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		spin, err := s.spins.GetForUpdate(ctx, spinID)
		if err != nil {
			return err
		}
		if spin == nil {
			return ErrSpinNotFound
		}
		if spin.Status != domain.SpinStatusPendingReview {
			return ErrNotPendingReview
		}
		if err := s.spins.SetReview(ctx, spinID, domain.SpinStatusLocked, reviewerID, notes); err != nil {
			return err
		}
		return s.audit.Insert(ctx, &domain.AuditEntry{
			ActorID:    reviewerID,
			ActorType:  "admin",
			Action:     "spin_approved",
			TargetType: "spin",
			TargetID:   spinID,
			Details:    fmt.Sprintf(`{"prize":%v}`, spin.PrizeAmount),
			Success:    true,
		})
	})
	if err != nil {
		if errors.Is(err, ErrSpinNotFound) || errors.Is(err, ErrNotPendingReview) {
			return err
		}
		zap.L().Error("failed to approve spin", zap.Error(err))
		return err
	}
	zap.L().Info("spin approved", zap.Int("spin_id", spinID), zap.Int("reviewer_id", reviewerID))
	return nil
}

// RejectSpin voids a held prize and releases its locked funds. Rejecting
// an already rejected spin is a no-op.
func (s *Service) RejectSpin(ctx context.Context, spinID, reviewerID int, notes string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		spin, err := s.spins.GetForUpdate(ctx, spinID)
		if err != nil {
			return err
		}
		if spin == nil {
			return ErrSpinNotFound
		}
		if spin.Status == domain.SpinStatusRejected {
			return nil
		}
		if spin.Status != domain.SpinStatusPendingReview {
			return ErrNotPendingReview
		}

		user, err := s.users.GetForUpdate(ctx, spin.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		lockedBefore := user.LockedBalance
		lockedAfter := lockedBefore - spin.PrizeAmount
		if lockedAfter < 0 {
			lockedAfter = 0
		}
		if err := s.users.UpdateBalances(ctx, spin.UserID, user.Balance, lockedAfter); err != nil {
			return err
		}
		if err := s.balances.AppendChange(ctx, &domain.BalanceChange{
			UserID:        spin.UserID,
			ChangeType:    domain.ChangeSpinRejected,
			Amount:        -spin.PrizeAmount,
			BalanceBefore: lockedBefore,
			BalanceAfter:  lockedAfter,
			ReferenceType: "spin",
			ReferenceID:   spin.ID,
			Notes:         notes,
		}); err != nil {
			return err
		}
		if err := s.spins.SetReview(ctx, spinID, domain.SpinStatusRejected, reviewerID, notes); err != nil {
			return err
		}
		return s.audit.Insert(ctx, &domain.AuditEntry{
			ActorID:    reviewerID,
			ActorType:  "admin",
			Action:     "spin_rejected",
			TargetType: "spin",
			TargetID:   spinID,
			Details:    fmt.Sprintf(`{"prize":%v}`, spin.PrizeAmount),
			Success:    true,
		})
	})
	if err != nil {
		if errors.Is(err, ErrSpinNotFound) || errors.Is(err, ErrNotPendingReview) {
			return err
		}
		zap.L().Error("failed to reject spin", zap.Error(err))
		return err
	}
	zap.L().Info("spin rejected", zap.Int("spin_id", spinID), zap.Int("reviewer_id", reviewerID))
	return nil
}

// History returns the user's most recent spins.
func (s *Service) History(ctx context.Context, userID, limit int) ([]domain.Spin, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.spins.ListByUser(ctx, userID, limit)
}
