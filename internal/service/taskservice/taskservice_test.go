package taskservice

import (
	"context"
	"testing"

	"github.com/dragonspin/dragonspin/internal/config"
	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func testConfig() *config.SpinConfig {
	return &config.SpinConfig{
		LargePrizeThreshold: 888,
		FallbackPrize:       88,
		PresetPrizes:        []float64{10, 5},
		Probabilities:       []config.PrizeSector{{Value: 88, Probability: 1}},
		Tasks: []config.Task{
			{Type: domain.TaskInitial, Required: 1, Reward: 10},
			{Type: domain.TaskPaidGame, Required: 1, Reward: 5},
			{Type: domain.TaskInviteOrGame, Required: 2, Reward: 1},
		},
	}
}

func NewMock(t *testing.T) (*Service, *MockTaskRepo, *MockUserRepo, *MockSpinRepo, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	tasks := NewMockTaskRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	spins := NewMockSpinRepo(ctrl)
	balances := NewMockBalanceRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(tasks, users, spins, balances, txManager, testConfig())
	defer ctrl.Finish()
	return service, tasks, users, spins, balances
}

func TestRecordCompletion(t *testing.T) {
	tests := []struct {
		name        string
		method      domain.CompletionMethod
		prepareMock func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo)
		expected    *CompletionResult
	}{
		{
			name:   "First play completes the initial task",
			method: domain.MethodSpin,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(nil, nil)
				tasks.EXPECT().CreateProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1}, nil)
				users.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 0}, nil)
				users.EXPECT().UpdateBalances(gomock.Any(), 1, 10.0, 0.0).Return(nil)
				balances.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)
				tasks.EXPECT().InsertCompletion(gomock.Any(), gomock.Any()).Return(nil)
				tasks.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &CompletionResult{Advanced: true, TaskCompleted: true, TaskIndex: 0, Reward: 10, NewIndex: 1},
		},
		{
			name:   "Free play does not advance a paid-only task",
			method: domain.MethodSpin,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 1}, nil)
			},
			expected: &CompletionResult{Advanced: false, NewIndex: 1},
		},
		{
			name:   "Referral does not advance a paid-only task",
			method: domain.MethodInvite,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 1}, nil)
			},
			expected: &CompletionResult{Advanced: false, NewIndex: 1},
		},
		{
			name:   "Paid play completes a paid-only task",
			method: domain.MethodPaidGame,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 1, TotalReward: 10, CompletedTasks: 1}, nil)
				users.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 10}, nil)
				users.EXPECT().UpdateBalances(gomock.Any(), 1, 15.0, 0.0).Return(nil)
				balances.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)
				tasks.EXPECT().InsertCompletion(gomock.Any(), gomock.Any()).Return(nil)
				tasks.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &CompletionResult{Advanced: true, TaskCompleted: true, TaskIndex: 1, Reward: 5, NewIndex: 2},
		},
		{
			name:   "Referral advances a multi-step task without completing it",
			method: domain.MethodInvite,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 2}, nil)
				tasks.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &CompletionResult{Advanced: true, TaskIndex: 2, NewIndex: 2},
		},
		{
			name:   "Finished ladder ignores further actions",
			method: domain.MethodPaidGame,
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, balances *MockBalanceRepo) {
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 3}, nil)
			},
			expected: &CompletionResult{Advanced: false, NewIndex: 3, LadderDone: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tasks, users, _, balances := NewMock(t)
			tt.prepareMock(tasks, users, balances)

			result, err := service.RecordCompletion(context.Background(), 1, tt.method)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAllTasksCompleted(t *testing.T) {
	service, tasks, _, _, _ := NewMock(t)

	tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(nil, nil)
	done, err := service.AllTasksCompleted(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, done)

	tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 3}, nil)
	done, err = service.AllTasksCompleted(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestCurrentTask(t *testing.T) {
	service, tasks, _, _, _ := NewMock(t)

	tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{
		UserID: 1, TaskIndex: 2, Progress: 1, TotalReward: 15, CompletedTasks: 2,
	}, nil)

	status, err := service.CurrentTask(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, status.TaskIndex)
	assert.Equal(t, domain.TaskInviteOrGame, status.TaskType)
	assert.Equal(t, 2, status.Required)
	assert.Equal(t, 1, status.Progress)
	assert.False(t, status.Done)

	tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 3}, nil)
	status, err = service.CurrentTask(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, status.Done)
}

func TestUnlockSpin(t *testing.T) {
	lockedSpin := &domain.Spin{ID: 5, UserID: 1, PrizeAmount: 88, Status: domain.SpinStatusLocked}

	tests := []struct {
		name          string
		prepareMock   func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo)
		expectedError error
	}{
		{
			name: "Successful unlock",
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo) {
				spins.EXPECT().GetForUpdate(gomock.Any(), 5).Return(lockedSpin, nil)
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 3}, nil)
				users.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 15, LockedBalance: 88}, nil)
				users.EXPECT().UpdateBalances(gomock.Any(), 1, 103.0, 0.0).Return(nil)
				balances.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)
				spins.EXPECT().MarkUnlocked(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name: "Already unlocked is a no-op",
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo) {
				spins.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Spin{
					ID: 5, UserID: 1, PrizeAmount: 88, Status: domain.SpinStatusUnlocked,
				}, nil)
			},
		},
		{
			name: "Tasks incomplete",
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo) {
				spins.EXPECT().GetForUpdate(gomock.Any(), 5).Return(lockedSpin, nil)
				tasks.EXPECT().GetProgress(gomock.Any(), 1).Return(&domain.TaskProgress{UserID: 1, TaskIndex: 1}, nil)
			},
			expectedError: ErrTasksIncomplete,
		},
		{
			name: "Pending review cannot be unlocked",
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo) {
				spins.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Spin{
					ID: 5, UserID: 1, PrizeAmount: 888, Status: domain.SpinStatusPendingReview,
				}, nil)
			},
			expectedError: ErrSpinUnderReview,
		},
		{
			name: "Spin of another user is not found",
			prepareMock: func(tasks *MockTaskRepo, users *MockUserRepo, spins *MockSpinRepo, balances *MockBalanceRepo) {
				spins.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Spin{
					ID: 5, UserID: 2, PrizeAmount: 88, Status: domain.SpinStatusLocked,
				}, nil)
			},
			expectedError: ErrSpinNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tasks, users, spins, balances := NewMock(t)
			tt.prepareMock(tasks, users, spins, balances)

			err := service.UnlockSpin(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
