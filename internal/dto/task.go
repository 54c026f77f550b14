package dto

type CurrentTaskDTO struct {
	TaskIndex      int     `json:"task_index" example:"2"`
	TaskType       string  `json:"task_type" example:"invite_or_game"`
	Required       int     `json:"required" example:"1"`
	Progress       int     `json:"progress" example:"0"`
	Reward         float64 `json:"reward" example:"0.5"`
	TotalReward    float64 `json:"total_reward" example:"9999.5"`
	CompletedTasks int     `json:"completed_tasks" example:"2"`
	TotalTasks     int     `json:"total_tasks" example:"24"`
	Done           bool    `json:"done" example:"false"`
}
