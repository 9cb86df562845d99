package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records the settlement of a violation fine.
type Payment struct {
	ID            int             `json:"payment_id"`
	ViolationID   int             `json:"violation_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// PaymentDetail is a payment joined with its violation for display.
type PaymentDetail struct {
	Payment
	VehicleNumber string `json:"vehicle_number"`
	TypeName      string `json:"type_name"`
	OwnerName     string `json:"owner_name,omitempty"`
}
