package taskservice

import (
	"context"
	"errors"

	"github.com/dragonspin/dragonspin/internal/config"
	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"go.uber.org/zap"
)

type TaskRepo interface {
	GetProgress(ctx context.Context, userID int) (*domain.TaskProgress, error)
	CreateProgress(ctx context.Context, userID int) (*domain.TaskProgress, error)
	UpdateProgress(ctx context.Context, p *domain.TaskProgress) error
	InsertCompletion(ctx context.Context, c *domain.TaskCompletion) error
}

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalances(ctx context.Context, userID int, balance, locked float64) error
}

type SpinRepo interface {
	GetForUpdate(ctx context.Context, spinID int) (*domain.Spin, error)
	MarkUnlocked(ctx context.Context, spinID int) error
}

type BalanceRepo interface {
	AppendChange(ctx context.Context, ch *domain.BalanceChange) error
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSpinNotFound    = errors.New("spin not found")
	ErrSpinUnderReview = errors.New("spin is pending review")
	ErrSpinRejected    = errors.New("spin was rejected")
	ErrTasksIncomplete = errors.New("task ladder is not finished")
)

// CompletionResult reports what a reported action did to the ladder.
type CompletionResult struct {
	Advanced      bool
	TaskCompleted bool
	TaskIndex     int
	Reward        float64
	NewIndex      int
	LadderDone    bool
}

// Status is the user's current position on the ladder.
type Status struct {
	TaskIndex      int
	TaskType       domain.TaskType
	Required       int
	Progress       int
	Reward         float64
	TotalReward    float64
	CompletedTasks int
	TotalTasks     int
	Done           bool
}

type Service struct {
	tasks     TaskRepo
	users     UserRepo
	spins     SpinRepo
	balances  BalanceRepo
	txManager pg.TXManager
	ladder    []config.Task
}

func New(tasks TaskRepo, users UserRepo, spins SpinRepo, balances BalanceRepo,
	txManager pg.TXManager, cfg *config.SpinConfig) *Service {
	return &Service{
		tasks:     tasks,
		users:     users,
		spins:     spins,
		balances:  balances,
		txManager: txManager,
		ladder:    cfg.Tasks,
	}
}

// RecordCompletion advances the ladder by one reported action. Only the
// current task can move: if the action does not qualify for it, nothing
// changes and Advanced is false. Task rewards are credited to the
// available balance inside the same transaction.
func (s *Service) RecordCompletion(ctx context.Context, userID int, method domain.CompletionMethod) (*CompletionResult, error) {
	result := &CompletionResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		progress, err := s.tasks.GetProgress(ctx, userID)
		if err != nil {
			return err
		}
		if progress == nil {
			progress, err = s.tasks.CreateProgress(ctx, userID)
			if err != nil {
				return err
			}
		}

		if progress.TaskIndex >= len(s.ladder) {
			result.NewIndex = progress.TaskIndex
			result.LadderDone = true
			return nil
		}

		task := s.ladder[progress.TaskIndex]
		if !task.Type.Satisfies(method) {
			result.NewIndex = progress.TaskIndex
			return nil
		}

		result.Advanced = true
		result.TaskIndex = progress.TaskIndex
		progress.Progress++

		if progress.Progress < task.Required {
			result.NewIndex = progress.TaskIndex
			return s.tasks.UpdateProgress(ctx, progress)
		}

		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		before := user.Balance
		after := before + task.Reward
		if err := s.users.UpdateBalances(ctx, userID, after, user.LockedBalance); err != nil {
			return err
		}
		if err := s.balances.AppendChange(ctx, &domain.BalanceChange{
			UserID:        userID,
			ChangeType:    domain.ChangeTaskReward,
			Amount:        task.Reward,
			BalanceBefore: before,
			BalanceAfter:  after,
			ReferenceType: "task",
			ReferenceID:   progress.TaskIndex,
			Notes:         "task reward credited",
		}); err != nil {
			return err
		}
		if err := s.tasks.InsertCompletion(ctx, &domain.TaskCompletion{
			UserID:      userID,
			TaskIndex:   progress.TaskIndex,
			TaskType:    task.Type,
			Method:      method,
			Reward:      task.Reward,
			TotalBefore: progress.TotalReward,
			TotalAfter:  progress.TotalReward + task.Reward,
		}); err != nil {
			return err
		}

		progress.TaskIndex++
		progress.Progress = 0
		progress.TotalReward += task.Reward
		progress.CompletedTasks++
		if err := s.tasks.UpdateProgress(ctx, progress); err != nil {
			return err
		}

		result.TaskCompleted = true
		result.Reward = task.Reward
		result.NewIndex = progress.TaskIndex
		result.LadderDone = progress.TaskIndex >= len(s.ladder)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record task completion", zap.Error(err))
		return nil, err
	}

	if result.TaskCompleted {
		zap.L().Info("task completed",
			zap.Int("user_id", userID), zap.Int("task_index", result.TaskIndex),
			zap.String("method", string(method)), zap.Float64("reward", result.Reward))
	}
	return result, nil
}

// AllTasksCompleted reports whether the user walked the whole ladder.
// A user with no progress row has completed nothing.
func (s *Service) AllTasksCompleted(ctx context.Context, userID int) (bool, error) {
	progress, err := s.tasks.GetProgress(ctx, userID)
	if err != nil {
		return false, err
	}
	if progress == nil {
		return false, nil
	}
	return progress.TaskIndex >= len(s.ladder), nil
}

// CurrentTask describes the task the user is on right now.
func (s *Service) CurrentTask(ctx context.Context, userID int) (*Status, error) {
	progress, err := s.tasks.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &domain.TaskProgress{UserID: userID}
	}

	status := &Status{
		TaskIndex:      progress.TaskIndex,
		Progress:       progress.Progress,
		TotalReward:    progress.TotalReward,
		CompletedTasks: progress.CompletedTasks,
		TotalTasks:     len(s.ladder),
	}
	if progress.TaskIndex >= len(s.ladder) {
		status.Done = true
		return status, nil
	}
	task := s.ladder[progress.TaskIndex]
	status.TaskType = task.Type
	status.Required = task.Required
	status.Reward = task.Reward
	return status, nil
}

// UnlockSpin moves a locked prize to the available balance once the
// ladder is done. Unlocking an already unlocked spin is a no-op.
func (s *Service) UnlockSpin(ctx context.Context, userID, spinID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		spin, err := s.spins.GetForUpdate(ctx, spinID)
		if err != nil {
			return err
		}
		if spin == nil || spin.UserID != userID {
			return ErrSpinNotFound
		}
		switch spin.Status {
		case domain.SpinStatusUnlocked:
			return nil
		case domain.SpinStatusPendingReview:
			return ErrSpinUnderReview
		case domain.SpinStatusRejected:
			return ErrSpinRejected
		}

		done, err := s.AllTasksCompleted(ctx, userID)
		if err != nil {
			return err
		}
		if !done {
			return ErrTasksIncomplete
		}

		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		before := user.Balance
		after := before + spin.PrizeAmount
		locked := user.LockedBalance - spin.PrizeAmount
		if locked < 0 {
			locked = 0
		}
		if err := s.users.UpdateBalances(ctx, userID, after, locked); err != nil {
			return err
		}
		if err := s.balances.AppendChange(ctx, &domain.BalanceChange{
			UserID:        userID,
			ChangeType:    domain.ChangeUnlock,
			Amount:        spin.PrizeAmount,
			BalanceBefore: before,
			BalanceAfter:  after,
			ReferenceType: "spin",
			ReferenceID:   spin.ID,
			Notes:         "prize unlocked after task ladder",
		}); err != nil {
			return err
		}
		return s.spins.MarkUnlocked(ctx, spin.ID)
	})
	if err != nil {
		if errors.Is(err, ErrTasksIncomplete) || errors.Is(err, ErrSpinNotFound) ||
			errors.Is(err, ErrSpinUnderReview) || errors.Is(err, ErrSpinRejected) {
			return err
		}
		zap.L().Error("failed to unlock spin", zap.Error(err))
		return err
	}
	return nil
}
