package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dragonspin/dragonspin/pkg/clients"
	"go.uber.org/zap"
)

// Notifier posts review alerts to an external webhook. Delivery is
// best-effort: the spin transaction has already committed when an alert
// is enqueued, and a full queue drops the alert rather than block the
// request path.
type Notifier struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(url string, client clients.HTTPClientI) *Notifier {
	return &Notifier{
		url:        url,
		client:     client,
		workerPool: NewWorkerPool(4),
	}
}

type message struct {
	Text string `json:"text"`
}

// LargePrize announces a prize held for manual review.
func (n *Notifier) LargePrize(userID, spinID int, amount float64) {
	text := fmt.Sprintf("large prize held for review: user=%d spin=%d amount=%v", userID, spinID, amount)
	if n.url == "" {
		zap.L().Warn("large prize alert", zap.Int("user_id", userID), zap.Int("spin_id", spinID), zap.Float64("amount", amount))
		return
	}

	err := n.workerPool.AddTask(context.Background(), func() error {
		return n.deliver(text)
	})
	if err != nil {
		zap.L().Warn("alert dropped", zap.Error(err))
	}
}

func (n *Notifier) deliver(text string) error {
	body, err := json.Marshal(message{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) Close() {
	n.workerPool.Close()
}
