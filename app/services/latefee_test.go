package services

import (
	"testing"
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

var testRules = config.FineRules{
	LateFeePercentPerDay: 0.05,
	GracePeriodDays:      7,
	MaxLateFeeDays:       30,
}

func overdueViolation(daysAgo int, status models.ViolationStatus) models.Violation {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return models.Violation{
		FineAmount:    decimal.NewFromInt(1000),
		Status:        status,
		ViolationDate: now.AddDate(0, 0, -daysAgo),
	}
}

func TestLateFee(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    models.Violation
		want string
	}{
		{"within grace period", overdueViolation(5, models.StatusUnpaid), "0"},
		{"exactly at grace boundary", overdueViolation(7, models.StatusUnpaid), "0"},
		{"one day past grace", overdueViolation(8, models.StatusUnpaid), "50"},
		{"ten days past grace", overdueViolation(17, models.StatusUnpaid), "500"},
		{"capped at max days", overdueViolation(100, models.StatusUnpaid), "1500"},
		{"paid never accrues", overdueViolation(100, models.StatusPaid), "0"},
		{"disputed still accrues", overdueViolation(8, models.StatusDisputed), "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LateFee(tt.v, testRules, now)
			if got.String() != tt.want {
				t.Errorf("LateFee() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAmountDue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	v := overdueViolation(8, models.StatusUnpaid)
	if got := AmountDue(v, testRules, now); got.String() != "1050" {
		t.Errorf("AmountDue() = %s, want 1050", got)
	}

	v = overdueViolation(2, models.StatusUnpaid)
	if got := AmountDue(v, testRules, now); got.String() != "1000" {
		t.Errorf("AmountDue() = %s, want 1000", got)
	}
}
