package domain

import "time"

// SourceKind names the event that granted a spin entitlement.
type SourceKind string

const (
	SourceInvite    SourceKind = "invite"
	SourcePaidGame  SourceKind = "paid_game"
	SourceFirstPlay SourceKind = "first_play"
	SourceManual    SourceKind = "manual"
	SourceBonus     SourceKind = "bonus"
)

// Valid reports whether k belongs to the closed set of source kinds.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceInvite, SourcePaidGame, SourceFirstPlay, SourceManual, SourceBonus:
		return true
	}
	return false
}

// CompletionMethod names the action reported to the task gate.
type CompletionMethod string

const (
	MethodSpin     CompletionMethod = "spin"
	MethodPaidGame CompletionMethod = "paid_game"
	MethodInvite   CompletionMethod = "invite"
)

// TaskType controls which completion methods advance a task.
type TaskType string

const (
	// TaskInitial is completed by any qualifying play.
	TaskInitial TaskType = "initial"
	// TaskPaidGame only advances on a paid play.
	TaskPaidGame TaskType = "paid_game"
	// TaskInviteOrGame advances on a paid play or a successful referral.
	TaskInviteOrGame TaskType = "invite_or_game"
)

// Satisfies reports whether method qualifies for a task of type t.
func (t TaskType) Satisfies(method CompletionMethod) bool {
	switch t {
	case TaskInitial:
		return method == MethodSpin || method == MethodPaidGame
	case TaskPaidGame:
		return method == MethodPaidGame
	case TaskInviteOrGame:
		return method == MethodPaidGame || method == MethodInvite
	}
	return false
}

const (
	SpinStatusLocked        = "locked"
	SpinStatusPendingReview = "pending_review"
	SpinStatusUnlocked      = "unlocked"
	SpinStatusRejected      = "rejected"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

const (
	ChangeSpinWin      = "spin_win"
	ChangeSpinRejected = "spin_rejected"
	ChangeTaskReward   = "task_reward"
	ChangeUnlock       = "unlock"
)

// User is owned by the auth layer; this core reads the ban flag and
// mutates the balance and counter fields transactionally.
type User struct {
	ID             int       `db:"id"`
	Login          string    `db:"login"`
	PasswordHash   string    `db:"password_hash"`
	IsBanned       bool      `db:"is_banned"`
	Balance        float64   `db:"balance"`
	LockedBalance  float64   `db:"locked_balance"`
	AvailableSpins int       `db:"available_spins"`
	TotalPaidPlays int       `db:"total_paid_plays"`
	CreatedAt      time.Time `db:"created_at"`
}

// Entitlement is a single-use right to perform one spin. Rows are never
// deleted; only the consumed flag may transition, exactly once.
type Entitlement struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	SourceKind SourceKind `db:"source_kind"`
	SourceID   int        `db:"source_id"`
	Consumed   bool       `db:"consumed"`
	ConsumedAt *time.Time `db:"consumed_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Spin records one resolved entitlement consumption.
type Spin struct {
	ID             int        `db:"id"`
	UserID         int        `db:"user_id"`
	EntitlementID  int        `db:"entitlement_id"`
	PrizeAmount    float64    `db:"prize_amount"`
	PrizeType      string     `db:"prize_type"`
	Status         string     `db:"status"`
	RequiresTasks  bool       `db:"requires_tasks"`
	TasksCompleted bool       `db:"tasks_completed"`
	RequiresReview bool       `db:"requires_review"`
	RandomValue    int64      `db:"random_value"`
	ServerNonce    string     `db:"server_nonce"`
	ReviewedBy     *int       `db:"reviewed_by"`
	ReviewedAt     *time.Time `db:"reviewed_at"`
	ReviewNotes    string     `db:"review_notes"`
	CreatedAt      time.Time  `db:"created_at"`
	UnlockedAt     *time.Time `db:"unlocked_at"`
}

// BalanceChange is the append-only trail behind every balance mutation.
type BalanceChange struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	ChangeType    string    `db:"change_type"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	ReferenceType string    `db:"reference_type"`
	ReferenceID   int       `db:"reference_id"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
}

// TaskProgress tracks a user's position in the sequential task ladder.
type TaskProgress struct {
	UserID         int       `db:"user_id"`
	TaskIndex      int       `db:"task_index"`
	Progress       int       `db:"progress"`
	TotalReward    float64   `db:"total_reward"`
	CompletedTasks int       `db:"completed_tasks"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// TaskCompletion is one row of the task completion log.
type TaskCompletion struct {
	ID          int              `db:"id"`
	UserID      int              `db:"user_id"`
	TaskIndex   int              `db:"task_index"`
	TaskType    TaskType         `db:"task_type"`
	Method      CompletionMethod `db:"completion_method"`
	Reward      float64          `db:"reward"`
	TotalBefore float64          `db:"total_before"`
	TotalAfter  float64          `db:"total_after"`
	CreatedAt   time.Time        `db:"created_at"`
}

// Payment is one confirmed external payment attempt. ProviderTxID is the
// global idempotency key for webhook processing.
type Payment struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	ProviderName    string     `db:"provider_name"`
	ProviderTxID    string     `db:"provider_tx_id"`
	ProviderOrderID string     `db:"provider_order_id"`
	Amount          float64    `db:"amount"`
	Currency        string     `db:"currency"`
	Status          string     `db:"status"`
	Used            bool       `db:"used"`
	UsedAt          *time.Time `db:"used_at"`
	CallbackPayload string     `db:"callback_payload"`
	CreatedAt       time.Time  `db:"created_at"`
}

// GameSession links a merchant order to the user that originated it.
type GameSession struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	GameMode        string    `db:"game_mode"`
	PaymentStatus   string    `db:"payment_status"`
	ExternalOrderID string    `db:"external_order_id"`
	ProviderOrderNo string    `db:"provider_order_no"`
	PaymentID       *int      `db:"payment_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// AuditEntry is one row of the audit log.
type AuditEntry struct {
	ID         int       `db:"id"`
	ActorID    int       `db:"actor_id"`
	ActorType  string    `db:"actor_type"`
	Action     string    `db:"action"`
	TargetType string    `db:"target_type"`
	TargetID   int       `db:"target_id"`
	Details    string    `db:"details"`
	Success    bool      `db:"success"`
	CreatedAt  time.Time `db:"created_at"`
}
