package dto

import "time"

type SpinResultDTO struct {
	SpinID         int     `json:"spin_id" example:"42"`
	PrizeAmount    float64 `json:"prize_amount" example:"88"`
	PrizeType      string  `json:"prize_type" example:"weighted"`
	Status         string  `json:"status" example:"locked"`
	RequiresTasks  bool    `json:"requires_tasks" example:"true"`
	RequiresReview bool    `json:"requires_review" example:"false"`
	TaskReward     float64 `json:"task_reward,omitempty" example:"0.5"`
}

type AvailableSpinsDTO struct {
	Available int `json:"available" example:"3"`
}

type SpinHistoryItemDTO struct {
	SpinID      int        `json:"spin_id" example:"42"`
	PrizeAmount float64    `json:"prize_amount" example:"88"`
	Status      string     `json:"status" example:"unlocked"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type UnlockRequestDTO struct {
	SpinID int `json:"spin_id" example:"42"`
}

type UnlockResponseDTO struct {
	Message string `json:"message"`
}

type ReviewRequestDTO struct {
	SpinID int    `json:"spin_id" example:"42"`
	Notes  string `json:"notes,omitempty" example:"verified manually"`
}
