package services

import (
	"math"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

// The aggregation functions in this file are pure: they operate on a snapshot
// of violation records fetched once by the caller and never touch the store.

// Totals holds the headline figures over a record set. PendingAmount is
// defined as TotalFineAmount minus CollectedAmount, so disputed fines count
// as pending until they are paid.
type Totals struct {
	Count           int             `json:"count"`
	TotalFineAmount decimal.Decimal `json:"total_fine_amount"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
}

// ComputeTotals sums fine amounts over the snapshot. An empty snapshot yields
// zero values, never an error.
func ComputeTotals(records []models.Violation) Totals {
	t := Totals{
		TotalFineAmount: decimal.Zero,
		CollectedAmount: decimal.Zero,
		PendingAmount:   decimal.Zero,
	}
	for _, r := range records {
		t.Count++
		t.TotalFineAmount = t.TotalFineAmount.Add(r.FineAmount)
		if r.Status == models.StatusPaid {
			t.CollectedAmount = t.CollectedAmount.Add(r.FineAmount)
		}
	}
	t.PendingAmount = t.TotalFineAmount.Sub(t.CollectedAmount)
	return t
}

// StatusBreakdown counts records by settlement status. Disputed records are
// excluded from both the paid and unpaid counters and reported on their own.
type StatusBreakdown struct {
	PaidCount     int `json:"paid_count"`
	UnpaidCount   int `json:"unpaid_count"`
	DisputedCount int `json:"disputed_count"`
}

// ComputeStatusBreakdown tallies the snapshot by status.
func ComputeStatusBreakdown(records []models.Violation) StatusBreakdown {
	var b StatusBreakdown
	for _, r := range records {
		switch r.Status {
		case models.StatusPaid:
			b.PaidCount++
		case models.StatusUnpaid:
			b.UnpaidCount++
		case models.StatusDisputed:
			b.DisputedCount++
		}
	}
	return b
}

// CollectionRate returns collected/total as a percentage rounded to one
// decimal place. A zero total yields 0.
func CollectionRate(t Totals) float64 {
	if t.TotalFineAmount.IsZero() {
		return 0
	}
	rate, _ := t.CollectedAmount.Div(t.TotalFineAmount).Mul(decimal.NewFromInt(100)).Float64()
	return math.Round(rate*10) / 10
}

// AverageFine returns the mean fine amount rounded to two decimal places, or
// zero for an empty snapshot.
func AverageFine(records []models.Violation) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.FineAmount)
	}
	return total.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
}

// GroupCount is one bucket of a group-by breakdown.
type GroupCount struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GroupByKey buckets the snapshot by keyFn and reports each bucket's share of
// the whole, one decimal place. Buckets appear in the order their key was
// first seen; ties are not re-ordered.
func GroupByKey(records []models.ViolationDetail, keyFn func(models.ViolationDetail) string) []GroupCount {
	if len(records) == 0 {
		return nil
	}
	index := make(map[string]int)
	var groups []GroupCount
	for _, r := range records {
		key := keyFn(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, GroupCount{Key: key})
		}
		groups[i].Count++
	}
	total := float64(len(records))
	for i := range groups {
		groups[i].Percentage = math.Round(float64(groups[i].Count)/total*1000) / 10
	}
	return groups
}

// ViolationsByArea breaks the snapshot down by area, adding fine totals per
// bucket. Areas are distinct per (name, city): two cities may both have an
// "Industrial Area" and they must not merge.
func ViolationsByArea(details []models.ViolationDetail) []models.AreaStats {
	if len(details) == 0 {
		return nil
	}
	type areaKey struct{ name, city string }
	index := make(map[areaKey]int)
	var stats []models.AreaStats
	for _, d := range details {
		key := areaKey{d.AreaName, d.City}
		i, ok := index[key]
		if !ok {
			i = len(stats)
			index[key] = i
			stats = append(stats, models.AreaStats{
				AreaName:       d.AreaName,
				City:           d.City,
				TotalFines:     decimal.Zero,
				CollectedFines: decimal.Zero,
			})
		}
		stats[i].ViolationCount++
		stats[i].TotalFines = stats[i].TotalFines.Add(d.FineAmount)
		if d.Status == models.StatusPaid {
			stats[i].CollectedFines = stats[i].CollectedFines.Add(d.FineAmount)
		}
	}
	total := float64(len(details))
	for i := range stats {
		stats[i].Percentage = math.Round(float64(stats[i].ViolationCount)/total*1000) / 10
	}
	return stats
}

// ViolationsByType breaks the snapshot down by violation type name.
func ViolationsByType(details []models.ViolationDetail) []models.TypeStats {
	groups := GroupByKey(details, func(d models.ViolationDetail) string { return d.TypeName })
	stats := make([]models.TypeStats, len(groups))
	sums := make(map[string]*models.TypeStats, len(groups))
	for i, g := range groups {
		stats[i] = models.TypeStats{
			TypeName:        g.Key,
			OccurrenceCount: g.Count,
			Percentage:      g.Percentage,
			TotalFines:      decimal.Zero,
			AverageFine:     decimal.Zero,
		}
		sums[g.Key] = &stats[i]
	}
	for _, d := range details {
		s := sums[d.TypeName]
		s.TotalFines = s.TotalFines.Add(d.FineAmount)
	}
	for i := range stats {
		stats[i].AverageFine = stats[i].TotalFines.Div(decimal.NewFromInt(int64(stats[i].OccurrenceCount))).Round(2)
	}
	return stats
}

// DashboardStats assembles the full dashboard view from one snapshot.
func DashboardStats(records []models.Violation) models.DashboardStats {
	totals := ComputeTotals(records)
	breakdown := ComputeStatusBreakdown(records)
	return models.DashboardStats{
		TotalViolations: totals.Count,
		TotalFines:      totals.TotalFineAmount,
		CollectedAmount: totals.CollectedAmount,
		PendingAmount:   totals.PendingAmount,
		CollectionRate:  CollectionRate(totals),
		AverageFine:     AverageFine(records),
		PaidCount:       breakdown.PaidCount,
		UnpaidCount:     breakdown.UnpaidCount,
		DisputedCount:   breakdown.DisputedCount,
	}
}
