package spin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/dto"
	"github.com/dragonspin/dragonspin/internal/service/spinservice"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/dragonspin/dragonspin/pkg/utils"
)

type Service interface {
	ExecuteSpin(ctx context.Context, userID int) (*spinservice.Result, error)
	History(ctx context.Context, userID, limit int) ([]domain.Spin, error)
}

// EntitlementService exposes the self-healing availability count.
type EntitlementService interface {
	Available(ctx context.Context, userID int) (int, error)
}

// TaskService unlocks prizes once the ladder is walked.
type TaskService interface {
	UnlockSpin(ctx context.Context, userID, spinID int) error
}

type SpinHandler struct {
	spinService        Service
	entitlementService EntitlementService
	taskService        TaskService
}

func New(spinService Service, entitlementService EntitlementService, taskService TaskService) *SpinHandler {
	return &SpinHandler{
		spinService:        spinService,
		entitlementService: entitlementService,
		taskService:        taskService,
	}
}

// Execute godoc
//
//	@Summary		Execute a spin
//	@Description	Consume the oldest spin entitlement and resolve a prize. The prize is locked until the task ladder is completed.
//	@Tags			Spins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SpinResultDTO
//	@Failure		400	{object}	utils.Response	"No entitlement available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"User is banned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/spin [post]
func (h *SpinHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.spinService.ExecuteSpin(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, spinservice.ErrNoEntitlementAvailable):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, spinservice.ErrUserBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResultDTO{
		SpinID:         result.SpinID,
		PrizeAmount:    result.PrizeAmount,
		PrizeType:      result.PrizeType,
		Status:         result.Status,
		RequiresTasks:  result.RequiresTasks,
		RequiresReview: result.RequiresReview,
		TaskReward:     result.TaskReward,
	})
}

// Available godoc
//
//	@Summary		Get available spins
//	@Description	Count the user's unconsumed spin entitlements, healing any counter drift on the way.
//	@Tags			Spins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AvailableSpinsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/spin/available [get]
func (h *SpinHandler) Available(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	available, err := h.entitlementService.Available(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AvailableSpinsDTO{Available: available})
}

// History godoc
//
//	@Summary		Get spin history
//	@Description	Get the authenticated user's most recent spins, newest first.
//	@Tags			Spins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SpinHistoryItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/spin/history [get]
func (h *SpinHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	spins, err := h.spinService.History(r.Context(), userID, 50)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]dto.SpinHistoryItemDTO, 0, len(spins))
	for _, s := range spins {
		items = append(items, dto.SpinHistoryItemDTO{
			SpinID:      s.ID,
			PrizeAmount: s.PrizeAmount,
			Status:      s.Status,
			CreatedAt:   s.CreatedAt,
			UnlockedAt:  s.UnlockedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// Unlock godoc
//
//	@Summary		Unlock a spin prize
//	@Description	Move a locked prize into the available balance once all tasks are completed. Unlocking twice is a no-op.
//	@Tags			Spins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UnlockRequestDTO	true	"Unlock request body"
//	@Success		200		{object}	dto.UnlockResponseDTO
//	@Failure		400		{object}	utils.Response	"Tasks incomplete or spin not unlockable"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Spin not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/spin/unlock [post]
func (h *SpinHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UnlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.taskService.UnlockSpin(r.Context(), userID, req.SpinID)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrSpinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, taskservice.ErrTasksIncomplete),
			errors.Is(err, taskservice.ErrSpinUnderReview),
			errors.Is(err, taskservice.ErrSpinRejected):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnlockResponseDTO{Message: "Prize unlocked"})
}
