package dto

import "time"

type CreateOrderResponseDTO struct {
	OrderID string  `json:"order_id" example:"GAME_1733760597000_1a2b3c4d"`
	PayURL  string  `json:"pay_url" example:"https://kspay.shop/pay/abc"`
	Amount  float64 `json:"amount" example:"1000"`
}

type OrderStatusDTO struct {
	OrderID string  `json:"order_id" example:"GAME_1733760597000_1a2b3c4d"`
	Status  string  `json:"status" example:"confirmed"`
	Amount  float64 `json:"amount" example:"1000"`
}

type PaymentHistoryItemDTO struct {
	OrderID   string    `json:"order_id" example:"GAME_1733760597000_1a2b3c4d"`
	Amount    float64   `json:"amount" example:"1000"`
	Currency  string    `json:"currency" example:"INR"`
	Status    string    `json:"status" example:"confirmed"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
