package request

import (
	"encoding/json"
	"time"
)

// PaymentIntentRequest accepts price as a JSON number or a numeric string.
type PaymentIntentRequest struct {
	Price json.Number `json:"price" validate:"required"`
}

type PaymentRequest struct {
	Email         string     `json:"email" validate:"required,email"`
	Price         float64    `json:"price"`
	TransactionID string     `json:"transactionId" validate:"required"`
	Date          *time.Time `json:"date"`
	CartIDs       []string   `json:"cartIds" validate:"dive,mongodb"`
	MenuItemIDs   []string   `json:"menuItemIds" validate:"dive,mongodb"`
	Status        string     `json:"status"`
}
