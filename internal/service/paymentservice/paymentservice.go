package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/fendpay"
	"github.com/dragonspin/dragonspin/internal/pg"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"
	"go.uber.org/zap"
)

// Ack is the fixed plain-text body the provider expects on every webhook
// response. Anything else makes the gateway retry the delivery.
const Ack = "success"

// statusSuccess is the provider's code for a settled payment.
const statusSuccess = "1"

type PaymentRepo interface {
	FindByProviderTxID(ctx context.Context, txID string) (*domain.Payment, error)
	FindByProviderOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID, limit int) ([]domain.Payment, error)
	CreateSession(ctx context.Context, s *domain.GameSession) (*domain.GameSession, error)
	FindSessionByOrderID(ctx context.Context, externalOrderID string) (*domain.GameSession, error)
	UpdateSessionPayment(ctx context.Context, sessionID int, status string, paymentID *int) error
	SetSessionProviderOrder(ctx context.Context, sessionID int, providerOrderNo string) error
}

type UserRepo interface {
	IncrementPaidPlays(ctx context.Context, userID int) error
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// Issuer grants spin entitlements for confirmed payments.
type Issuer interface {
	Grant(ctx context.Context, userID int, source domain.SourceKind, sourceRef int) (*domain.Entitlement, error)
}

// TaskGate receives the paid-play completion for the task ladder.
type TaskGate interface {
	RecordCompletion(ctx context.Context, userID int, method domain.CompletionMethod) (*taskservice.CompletionResult, error)
}

// Provider is the outbound side of the payment gateway.
type Provider interface {
	CreateOrder(ctx context.Context, outTradeNo string, amount float64, notifyURL, returnURL string) (*fendpay.Order, error)
	QueryOrder(ctx context.Context, outTradeNo string) (*fendpay.OrderState, error)
}

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrOrderNotFound          = errors.New("payment order not found")
	ErrPaymentProviderFailure = errors.New("payment provider unavailable")
)

// OrderResult is what the client needs to complete a payment.
type OrderResult struct {
	OrderID string
	PayURL  string
	Amount  float64
}

type Service struct {
	payments  PaymentRepo
	users     UserRepo
	audit     AuditRepo
	issuer    Issuer
	gate      TaskGate
	provider  Provider
	txManager pg.TXManager

	secret  string
	amount  float64
	baseURL string
}

func New(payments PaymentRepo, users UserRepo, audit AuditRepo, issuer Issuer, gate TaskGate,
	provider Provider, txManager pg.TXManager, secret string, amount float64, baseURL string) *Service {
	return &Service{
		payments:  payments,
		users:     users,
		audit:     audit,
		issuer:    issuer,
		gate:      gate,
		provider:  provider,
		txManager: txManager,
		secret:    secret,
		amount:    amount,
		baseURL:   baseURL,
	}
}

// CreateOrder opens a payment session and registers the order with the
// gateway. The merchant order id is the key the webhook later resolves
// the session by.
func (s *Service) CreateOrder(ctx context.Context, userID int) (*OrderResult, error) {
	outTradeNo := fmt.Sprintf("GAME_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])

	session, err := s.payments.CreateSession(ctx, &domain.GameSession{
		UserID:          userID,
		GameMode:        "paid",
		PaymentStatus:   domain.PaymentStatusPending,
		ExternalOrderID: outTradeNo,
	})
	if err != nil {
		return nil, err
	}

	order, err := s.provider.CreateOrder(ctx, outTradeNo, s.amount,
		s.baseURL+"/api/webhook/fendpay", s.baseURL+"/pay/return")
	if err != nil {
		zap.L().Error("failed to create provider order", zap.Error(err))
		if err := s.payments.UpdateSessionPayment(ctx, session.ID, domain.PaymentStatusFailed, nil); err != nil {
			zap.L().Error("failed to mark session failed", zap.Error(err))
		}
		return nil, ErrPaymentProviderFailure
	}

	if err := s.payments.SetSessionProviderOrder(ctx, session.ID, order.OrderNo); err != nil {
		return nil, err
	}

	zap.L().Info("payment order created",
		zap.Int("user_id", userID), zap.String("order_id", outTradeNo))
	return &OrderResult{OrderID: outTradeNo, PayURL: order.PayURL, Amount: s.amount}, nil
}

// HandleWebhook processes one provider callback and always returns the
// fixed acknowledgement. Signature failures, unknown orders, duplicate
// deliveries and storage errors are logged, never surfaced: a non-ack
// response only triggers provider retries that cannot do better.
func (s *Service) HandleWebhook(ctx context.Context, raw []byte) string {
	params, err := parseCallback(raw)
	if err != nil {
		zap.L().Warn("malformed webhook payload", zap.Error(err))
		return Ack
	}

	if !fendpay.VerifySign(params, s.secret) {
		zap.L().Warn("webhook signature mismatch", zap.String("order_id", params["outTradeNo"]))
		s.auditWebhook(ctx, 0, params["orderNo"], "invalid signature", false)
		return Ack
	}

	providerTxID := params["orderNo"]
	outTradeNo := params["outTradeNo"]

	existing, err := s.payments.FindByProviderTxID(ctx, providerTxID)
	if err != nil {
		return Ack
	}
	if existing != nil {
		zap.L().Info("duplicate webhook delivery ignored", zap.String("provider_tx_id", providerTxID))
		return Ack
	}

	session, err := s.payments.FindSessionByOrderID(ctx, outTradeNo)
	if err != nil {
		return Ack
	}
	if session == nil {
		zap.L().Warn("webhook for unknown order", zap.String("order_id", outTradeNo))
		s.auditWebhook(ctx, 0, providerTxID, "unknown order "+outTradeNo, false)
		return Ack
	}

	if params["status"] != statusSuccess {
		zap.L().Info("webhook reported unsuccessful payment",
			zap.String("order_id", outTradeNo), zap.String("status", params["status"]))
		if err := s.payments.UpdateSessionPayment(ctx, session.ID, domain.PaymentStatusFailed, nil); err != nil {
			zap.L().Error("failed to mark session failed", zap.Error(err))
		}
		return Ack
	}

	amount, err := strconv.ParseFloat(params["amount"], 64)
	if err != nil {
		zap.L().Warn("webhook carries unparsable amount", zap.String("amount", params["amount"]))
		return Ack
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.payments.Insert(ctx, &domain.Payment{
			UserID:          session.UserID,
			ProviderName:    fendpay.ProviderName,
			ProviderTxID:    providerTxID,
			ProviderOrderID: outTradeNo,
			Amount:          amount,
			Currency:        "INR",
			Status:          domain.PaymentStatusConfirmed,
			CallbackPayload: string(raw),
		})
		if err != nil {
			return err
		}
		if err := s.payments.UpdateSessionPayment(ctx, session.ID, domain.PaymentStatusConfirmed, &payment.ID); err != nil {
			return err
		}
		if err := s.users.IncrementPaidPlays(ctx, session.UserID); err != nil {
			return err
		}
		if _, err := s.issuer.Grant(ctx, session.UserID, domain.SourcePaidGame, payment.ID); err != nil {
			return err
		}
		if _, err := s.gate.RecordCompletion(ctx, session.UserID, domain.MethodPaidGame); err != nil {
			return err
		}
		return s.audit.Insert(ctx, &domain.AuditEntry{
			ActorID:    session.UserID,
			ActorType:  "system",
			Action:     "payment_confirmed",
			TargetType: "payment",
			TargetID:   payment.ID,
			Details:    fmt.Sprintf(`{"order_id":%q,"amount":%v}`, outTradeNo, amount),
			Success:    true,
		})
	})
	if err != nil {
		// A racing delivery may have inserted the row first.
		if errors.Is(err, domain.ErrDuplicatePayment) {
			zap.L().Info("concurrent webhook delivery lost the race", zap.String("provider_tx_id", providerTxID))
			return Ack
		}
		zap.L().Error("failed to process webhook", zap.Error(err))
		return Ack
	}

	zap.L().Info("payment confirmed",
		zap.Int("user_id", session.UserID), zap.String("order_id", outTradeNo), zap.Float64("amount", amount))
	return Ack
}

// StatusResult is the reconciled state of one payment order.
type StatusResult struct {
	OrderID string
	Status  string
	Amount  float64
}

// OrderStatus reports the state of the user's order. A payment row is
// authoritative once the webhook has landed; until then the gateway is
// polled, so the client can see a settled payment before the callback
// arrives.
func (s *Service) OrderStatus(ctx context.Context, userID int, orderID string) (*StatusResult, error) {
	session, err := s.payments.FindSessionByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrOrderNotFound
	}

	payment, err := s.payments.FindByProviderOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment != nil {
		return &StatusResult{OrderID: orderID, Status: payment.Status, Amount: payment.Amount}, nil
	}

	state, err := s.provider.QueryOrder(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to query provider order", zap.String("order_id", orderID), zap.Error(err))
		return nil, ErrPaymentProviderFailure
	}

	status := session.PaymentStatus
	if state.Status == statusSuccess {
		status = domain.PaymentStatusConfirmed
	}
	amount, _ := strconv.ParseFloat(state.Amount, 64)
	return &StatusResult{OrderID: orderID, Status: status, Amount: amount}, nil
}

// History returns the user's most recent payments.
func (s *Service) History(ctx context.Context, userID, limit int) ([]domain.Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.payments.ListByUser(ctx, userID, limit)
}

func (s *Service) auditWebhook(ctx context.Context, userID int, ref, details string, success bool) {
	err := s.audit.Insert(ctx, &domain.AuditEntry{
		ActorID:    userID,
		ActorType:  "system",
		Action:     "payment_webhook",
		TargetType: "payment",
		Details:    fmt.Sprintf(`{"ref":%q,"info":%q}`, ref, details),
		Success:    success,
	})
	if err != nil {
		zap.L().Error("failed to audit webhook", zap.Error(err))
	}
}

// parseCallback flattens the provider's JSON body into the string map the
// signature scheme operates on.
func parseCallback(raw []byte) (map[string]string, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	params := make(map[string]string, len(payload))
	for k, v := range payload {
		switch val := v.(type) {
		case string:
			params[k] = val
		case float64:
			params[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			params[k] = strconv.FormatBool(val)
		case nil:
		default:
			b, _ := json.Marshal(val)
			params[k] = string(b)
		}
	}
	return params, nil
}
