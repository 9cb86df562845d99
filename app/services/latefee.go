package services

import (
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

// LateFee computes the accrued late fee on an unsettled violation: a fixed
// percentage of the fine per day past the grace period, capped at
// MaxLateFeeDays of accrual. Paid violations never accrue.
func LateFee(v models.Violation, rules config.FineRules, now time.Time) decimal.Decimal {
	if v.Status == models.StatusPaid {
		return decimal.Zero
	}
	daysOverdue := int(now.Sub(v.ViolationDate).Hours()/24) - rules.GracePeriodDays
	if daysOverdue <= 0 {
		return decimal.Zero
	}
	if daysOverdue > rules.MaxLateFeeDays {
		daysOverdue = rules.MaxLateFeeDays
	}
	perDay := decimal.NewFromFloat(rules.LateFeePercentPerDay)
	return v.FineAmount.Mul(perDay).Mul(decimal.NewFromInt(int64(daysOverdue))).Round(2)
}

// AmountDue is the fine plus any accrued late fee.
func AmountDue(v models.Violation, rules config.FineRules, now time.Time) decimal.Decimal {
	return v.FineAmount.Add(LateFee(v, rules, now))
}
