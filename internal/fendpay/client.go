package fendpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dragonspin/dragonspin/pkg/clients"
	"go.uber.org/zap"
)

// ProviderName identifies this gateway in payment rows.
const ProviderName = "fendpay"

var ErrProviderFailure = errors.New("payment provider request failed")

type Config struct {
	MerchantNumber string
	Secret         string
	APIURL         string
}

type Client struct {
	cfg    Config
	client clients.HTTPClientI
}

func NewClient(cfg Config, client clients.HTTPClientI) *Client {
	return &Client{cfg: cfg, client: client}
}

type apiResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Order is the provider's view of a created payment order.
type Order struct {
	OrderNo string `json:"orderNo"`
	PayURL  string `json:"payUrl"`
}

// OrderState is the provider's view of an existing order. The gateway
// signs query responses the same way it signs callbacks.
type OrderState struct {
	OrderNo    string `json:"orderNo"`
	OutTradeNo string `json:"outTradeNo"`
	Status     string `json:"status"`
	Amount     string `json:"amount"`
	Sign       string `json:"sign"`
}

// CreateOrder registers a collection order with the gateway. Amounts are
// sent with two decimals, the way the gateway signs them.
func (c *Client) CreateOrder(ctx context.Context, outTradeNo string, amount float64, notifyURL, returnURL string) (*Order, error) {
	params := map[string]string{
		"merchantNumber": c.cfg.MerchantNumber,
		"outTradeNo":     outTradeNo,
		"amount":         strconv.FormatFloat(amount, 'f', 2, 64),
		"notifyUrl":      notifyURL,
		"returnUrl":      returnURL,
	}
	params["sign"] = Sign(params, c.cfg.Secret)

	var order Order
	if err := c.post(ctx, "/api/order/create", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// QueryOrder fetches the current state of an order by the merchant id
// and verifies the response signature before trusting it.
func (c *Client) QueryOrder(ctx context.Context, outTradeNo string) (*OrderState, error) {
	params := map[string]string{
		"merchantNumber": c.cfg.MerchantNumber,
		"outTradeNo":     outTradeNo,
	}
	params["sign"] = Sign(params, c.cfg.Secret)

	var state OrderState
	if err := c.post(ctx, "/api/order/query", params, &state); err != nil {
		return nil, err
	}

	signed := map[string]string{
		"orderNo":    state.OrderNo,
		"outTradeNo": state.OutTradeNo,
		"status":     state.Status,
		"amount":     state.Amount,
		"sign":       state.Sign,
	}
	if !VerifySign(signed, c.cfg.Secret) {
		zap.L().Error("payment provider response signature mismatch", zap.String("order_id", outTradeNo))
		return nil, fmt.Errorf("%w: response signature mismatch", ErrProviderFailure)
	}
	return &state, nil
}

func (c *Client) post(ctx context.Context, path string, params map[string]string, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("payment provider request failed", zap.String("path", path), zap.Error(err))
		return errors.Join(ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("payment provider returned bad status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d", ErrProviderFailure, resp.StatusCode)
	}

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return errors.Join(ErrProviderFailure, err)
	}
	if api.Code != 200 {
		zap.L().Error("payment provider rejected request",
			zap.String("path", path), zap.Int("code", api.Code), zap.String("msg", api.Msg))
		return fmt.Errorf("%w: code %d %s", ErrProviderFailure, api.Code, api.Msg)
	}
	return json.Unmarshal(api.Data, out)
}
