package spin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dragonspin/dragonspin/internal/dto"
	"github.com/dragonspin/dragonspin/internal/service/spinservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/dragonspin/dragonspin/pkg/utils"
)

// ReviewService resolves prizes held for manual review.
type ReviewService interface {
	ApproveSpin(ctx context.Context, spinID, reviewerID int, notes string) error
	RejectSpin(ctx context.Context, spinID, reviewerID int, notes string) error
}

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReview(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Approve godoc
//
//	@Summary		Approve a held prize
//	@Description	Release a prize held for review back into the normal task flow.
//	@Tags			Review
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Spin is not pending review"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"User is not a reviewer"
//	@Failure		404		{object}	utils.Response	"Spin not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/spin/approve [post]
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.reviewService.ApproveSpin, "Spin approved")
}

// Reject godoc
//
//	@Summary		Reject a held prize
//	@Description	Void a prize held for review and release its locked funds.
//	@Tags			Review
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Spin is not pending review"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"User is not a reviewer"
//	@Failure		404		{object}	utils.Response	"Spin not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/spin/reject [post]
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.reviewService.RejectSpin, "Spin rejected")
}

func (h *ReviewHandler) review(w http.ResponseWriter, r *http.Request,
	resolve func(ctx context.Context, spinID, reviewerID int, notes string) error, message string) {
	reviewerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := resolve(r.Context(), req.SpinID, reviewerID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, spinservice.ErrSpinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, spinservice.ErrNotPendingReview):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}
