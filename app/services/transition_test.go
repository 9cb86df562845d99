package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.ViolationStatus
		to   models.ViolationStatus
		want bool
	}{
		{models.StatusUnpaid, models.StatusPaid, true},
		{models.StatusUnpaid, models.StatusDisputed, true},
		{models.StatusDisputed, models.StatusPaid, true},
		{models.StatusDisputed, models.StatusUnpaid, false},
		{models.StatusPaid, models.StatusUnpaid, false},
		{models.StatusPaid, models.StatusDisputed, false},
		{models.StatusUnpaid, models.StatusUnpaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMarkPaid(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	v := models.Violation{
		ID:         42,
		FineAmount: decimal.NewFromInt(1000),
		Status:     models.StatusUnpaid,
	}

	payment, err := MarkPaid(&v, decimal.NewFromInt(1000), models.MethodOnline, now)
	if err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}

	if v.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", v.Status)
	}
	if payment.ViolationID != 42 {
		t.Errorf("payment.ViolationID = %d, want 42", payment.ViolationID)
	}
	if !payment.AmountPaid.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("payment.AmountPaid = %s, want 1000", payment.AmountPaid)
	}
	if payment.PaymentMethod != models.MethodOnline {
		t.Errorf("payment.PaymentMethod = %s, want online", payment.PaymentMethod)
	}
	if !strings.HasPrefix(payment.TransactionID, "TXN20240310143000-") {
		t.Errorf("payment.TransactionID = %s, want TXN20240310143000- prefix", payment.TransactionID)
	}
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	v := models.Violation{
		ID:         7,
		FineAmount: decimal.NewFromInt(500),
		Status:     models.StatusPaid,
	}

	payment, err := MarkPaid(&v, decimal.NewFromInt(500), models.MethodCash, time.Now())

	if !errors.Is(err, models.ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState", err)
	}
	if payment != nil {
		t.Errorf("payment = %+v, want nil", payment)
	}
	if v.Status != models.StatusPaid {
		t.Errorf("status changed to %s, record must stay untouched", v.Status)
	}
}

func TestMarkPaid_Disputed(t *testing.T) {
	v := models.Violation{ID: 9, FineAmount: decimal.NewFromInt(800), Status: models.StatusDisputed}

	_, err := MarkPaid(&v, decimal.NewFromInt(800), models.MethodCard, time.Now())
	if err != nil {
		t.Fatalf("MarkPaid() on disputed error = %v", err)
	}
	if v.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", v.Status)
	}
}

func TestMarkPaid_InvalidMethod(t *testing.T) {
	v := models.Violation{ID: 3, FineAmount: decimal.NewFromInt(200), Status: models.StatusUnpaid}

	_, err := MarkPaid(&v, decimal.NewFromInt(200), models.PaymentMethod("bitcoin"), time.Now())
	if err == nil {
		t.Fatal("expected error for unknown payment method")
	}
	if v.Status != models.StatusUnpaid {
		t.Errorf("status changed to %s, record must stay untouched", v.Status)
	}
}

func TestMarkPaid_NegativeAmount(t *testing.T) {
	v := models.Violation{ID: 4, FineAmount: decimal.NewFromInt(200), Status: models.StatusUnpaid}

	_, err := MarkPaid(&v, decimal.NewFromInt(-1), models.MethodCash, time.Now())
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	if v.Status != models.StatusUnpaid {
		t.Errorf("status changed to %s, record must stay untouched", v.Status)
	}
}

func TestMarkPaid_UpdatesTotals(t *testing.T) {
	records := []models.Violation{
		{FineAmount: decimal.NewFromInt(500), Status: models.StatusPaid},
		{FineAmount: decimal.NewFromInt(1000), Status: models.StatusUnpaid},
		{FineAmount: decimal.NewFromInt(300), Status: models.StatusPaid},
	}

	if _, err := MarkPaid(&records[1], decimal.NewFromInt(1000), models.MethodOnline, time.Now()); err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}

	totals := ComputeTotals(records)
	if !totals.CollectedAmount.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("CollectedAmount = %s, want 1800", totals.CollectedAmount)
	}
	if !totals.PendingAmount.IsZero() {
		t.Errorf("PendingAmount = %s, want 0", totals.PendingAmount)
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	now := time.Now()
	a := NewTransactionID(now)
	b := NewTransactionID(now)
	if a == b {
		t.Errorf("two references generated in the same instant collide: %s", a)
	}
}
