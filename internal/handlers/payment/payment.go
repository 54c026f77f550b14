package payment

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/dto"
	"github.com/dragonspin/dragonspin/internal/service/paymentservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/dragonspin/dragonspin/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID int) (*paymentservice.OrderResult, error)
	OrderStatus(ctx context.Context, userID int, orderID string) (*paymentservice.StatusResult, error)
	HandleWebhook(ctx context.Context, raw []byte) string
	History(ctx context.Context, userID, limit int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a payment order
//	@Description	Register a paid-play order with the payment gateway and return the payment URL.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreateOrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Payment provider unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	order, err := h.paymentService.CreateOrder(r.Context(), userID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentProviderFailure) {
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		OrderID: order.OrderID,
		PayURL:  order.PayURL,
		Amount:  order.Amount,
	})
}

// Status godoc
//
//	@Summary		Get payment order status
//	@Description	Report the state of one of the user's orders, polling the gateway when the callback has not landed yet.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			order_id	query		string	true	"Merchant order id"
//	@Success		200			{object}	dto.OrderStatusDTO
//	@Failure		400			{object}	utils.Response	"Missing order id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		502			{object}	utils.Response	"Payment provider unavailable"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/status [get]
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing order id")
		return
	}

	status, err := h.paymentService.OrderStatus(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentProviderFailure):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrderStatusDTO{
		OrderID: status.OrderID,
		Status:  status.Status,
		Amount:  status.Amount,
	})
}

// Webhook godoc
//
//	@Summary		Payment gateway callback
//	@Description	Process one provider callback. The response is always the fixed plain-text acknowledgement the gateway expects.
//	@Tags			Payments
//	@Accept			json
//	@Produce		plain
//	@Success		200	{string}	string	"success"
//	@Router			/api/webhook/fendpay [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		raw = nil
	}

	ack := h.paymentService.HandleWebhook(r.Context(), raw)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ack))
}

// History godoc
//
//	@Summary		Get payment history
//	@Description	Get the authenticated user's most recent payments, newest first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentHistoryItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/history [get]
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.paymentService.History(r.Context(), userID, 50)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]dto.PaymentHistoryItemDTO, 0, len(payments))
	for _, p := range payments {
		items = append(items, dto.PaymentHistoryItemDTO{
			OrderID:   p.ProviderOrderID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
