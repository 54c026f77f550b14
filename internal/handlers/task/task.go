package task

import (
	"context"
	"net/http"

	"github.com/dragonspin/dragonspin/internal/dto"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/dragonspin/dragonspin/pkg/utils"
)

type Service interface {
	CurrentTask(ctx context.Context, userID int) (*taskservice.Status, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Current godoc
//
//	@Summary		Get current task
//	@Description	Get the authenticated user's position on the task ladder.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CurrentTaskDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/task/current [get]
func (h *TaskHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.taskService.CurrentTask(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CurrentTaskDTO{
		TaskIndex:      status.TaskIndex,
		TaskType:       string(status.TaskType),
		Required:       status.Required,
		Progress:       status.Progress,
		Reward:         status.Reward,
		TotalReward:    status.TotalReward,
		CompletedTasks: status.CompletedTasks,
		TotalTasks:     status.TotalTasks,
		Done:           status.Done,
	})
}
