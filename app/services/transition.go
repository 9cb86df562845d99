package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

// Status transitions for a violation. Paid is terminal: no transition leaves
// it. Rejecting a dispute back to unpaid is not supported.
var allowedTransitions = map[models.ViolationStatus][]models.ViolationStatus{
	models.StatusUnpaid:   {models.StatusPaid, models.StatusDisputed},
	models.StatusDisputed: {models.StatusPaid},
}

// CanTransition reports whether a violation may move from one status to another.
func CanTransition(from, to models.ViolationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MarkPaid transitions a violation to paid and returns the payment record to
// append. It fails with models.ErrInvalidState when the violation is already
// paid; a double payment is rejected, not silently ignored. The violation is
// left untouched on failure.
func MarkPaid(v *models.Violation, amount decimal.Decimal, method models.PaymentMethod, now time.Time) (*models.Payment, error) {
	if !CanTransition(v.Status, models.StatusPaid) {
		return nil, fmt.Errorf("violation %d is already %s: %w", v.ID, v.Status, models.ErrInvalidState)
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("payment amount cannot be negative")
	}

	v.Status = models.StatusPaid
	return &models.Payment{
		ViolationID:   v.ID,
		PaymentDate:   now,
		AmountPaid:    amount,
		PaymentMethod: method,
		TransactionID: NewTransactionID(now),
	}, nil
}

// NewTransactionID builds a payment reference like TXN20240131093005-1a2b3c.
// The uuid suffix keeps references unique when payments land in the same second.
func NewTransactionID(now time.Time) string {
	return "TXN" + now.Format("20060102150405") + "-" + uuid.NewString()[:6]
}
