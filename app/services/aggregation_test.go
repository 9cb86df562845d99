package services

import (
	"testing"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

func violation(fine string, status models.ViolationStatus) models.Violation {
	return models.Violation{
		VehicleNumber: "KAA123X",
		FineAmount:    decimal.RequireFromString(fine),
		Status:        status,
	}
}

func TestComputeTotals(t *testing.T) {
	records := []models.Violation{
		violation("500", models.StatusPaid),
		violation("1000", models.StatusUnpaid),
		violation("300", models.StatusPaid),
	}

	got := ComputeTotals(records)

	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
	if !got.TotalFineAmount.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("TotalFineAmount = %s, want 1800", got.TotalFineAmount)
	}
	if !got.CollectedAmount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("CollectedAmount = %s, want 800", got.CollectedAmount)
	}
	if !got.PendingAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("PendingAmount = %s, want 1000", got.PendingAmount)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	got := ComputeTotals(nil)

	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
	if !got.TotalFineAmount.IsZero() || !got.CollectedAmount.IsZero() || !got.PendingAmount.IsZero() {
		t.Errorf("expected all zero amounts, got %+v", got)
	}
}

func TestComputeTotals_CollectedPlusPendingEqualsTotal(t *testing.T) {
	records := []models.Violation{
		violation("499.99", models.StatusPaid),
		violation("0.01", models.StatusUnpaid),
		violation("123.45", models.StatusDisputed),
		violation("876.55", models.StatusPaid),
	}

	got := ComputeTotals(records)

	if !got.CollectedAmount.Add(got.PendingAmount).Equal(got.TotalFineAmount) {
		t.Errorf("collected %s + pending %s != total %s",
			got.CollectedAmount, got.PendingAmount, got.TotalFineAmount)
	}
}

func TestComputeTotals_DisputedCountsAsPending(t *testing.T) {
	records := []models.Violation{
		violation("700", models.StatusDisputed),
		violation("300", models.StatusPaid),
	}

	got := ComputeTotals(records)

	if !got.PendingAmount.Equal(decimal.NewFromInt(700)) {
		t.Errorf("PendingAmount = %s, want 700", got.PendingAmount)
	}
}

func TestComputeStatusBreakdown(t *testing.T) {
	records := []models.Violation{
		violation("500", models.StatusPaid),
		violation("1000", models.StatusUnpaid),
		violation("300", models.StatusPaid),
		violation("200", models.StatusDisputed),
	}

	got := ComputeStatusBreakdown(records)

	if got.PaidCount != 2 || got.UnpaidCount != 1 || got.DisputedCount != 1 {
		t.Errorf("breakdown = %+v, want paid 2, unpaid 1, disputed 1", got)
	}
}

func TestCollectionRate(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Violation
		want    float64
	}{
		{
			name: "mixed records round to one decimal",
			records: []models.Violation{
				violation("500", models.StatusPaid),
				violation("1000", models.StatusUnpaid),
				violation("300", models.StatusPaid),
			},
			want: 44.4,
		},
		{
			name:    "empty snapshot",
			records: nil,
			want:    0,
		},
		{
			name: "everything paid",
			records: []models.Violation{
				violation("250", models.StatusPaid),
				violation("750", models.StatusPaid),
			},
			want: 100,
		},
		{
			name: "one third collected",
			records: []models.Violation{
				violation("100", models.StatusPaid),
				violation("100", models.StatusUnpaid),
				violation("100", models.StatusUnpaid),
			},
			want: 33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectionRate(ComputeTotals(tt.records))
			if got != tt.want {
				t.Errorf("CollectionRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageFine(t *testing.T) {
	records := []models.Violation{
		violation("500", models.StatusPaid),
		violation("1000", models.StatusUnpaid),
		violation("300", models.StatusPaid),
	}

	got := AverageFine(records)

	if got.String() != "600" {
		t.Errorf("AverageFine() = %s, want 600", got)
	}
}

func TestAverageFine_TwoDecimals(t *testing.T) {
	records := []models.Violation{
		violation("100", models.StatusUnpaid),
		violation("100", models.StatusUnpaid),
		violation("100.01", models.StatusUnpaid),
	}

	got := AverageFine(records)

	if got.String() != "100" {
		t.Errorf("AverageFine() = %s, want 100", got)
	}

	records = append(records, violation("0.01", models.StatusUnpaid))
	got = AverageFine(records)
	if got.String() != "75.01" {
		t.Errorf("AverageFine() = %s, want 75.01", got)
	}
}

func TestAverageFine_Empty(t *testing.T) {
	if got := AverageFine(nil); !got.IsZero() {
		t.Errorf("AverageFine(nil) = %s, want 0", got)
	}
}

func detail(area, city, typeName, fine string, status models.ViolationStatus) models.ViolationDetail {
	return models.ViolationDetail{
		Violation: violation(fine, status),
		AreaName:  area,
		City:      city,
		TypeName:  typeName,
	}
}

func TestGroupByKey_InsertionOrder(t *testing.T) {
	details := []models.ViolationDetail{
		detail("Westlands", "Nairobi", "Speeding", "500", models.StatusUnpaid),
		detail("CBD", "Nairobi", "Speeding", "500", models.StatusUnpaid),
		detail("Westlands", "Nairobi", "No Seatbelt", "300", models.StatusPaid),
		detail("Nyali", "Mombasa", "Speeding", "500", models.StatusUnpaid),
	}

	groups := GroupByKey(details, func(d models.ViolationDetail) string { return d.AreaName })

	wantKeys := []string{"Westlands", "CBD", "Nyali"}
	if len(groups) != len(wantKeys) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantKeys))
	}
	for i, key := range wantKeys {
		if groups[i].Key != key {
			t.Errorf("groups[%d].Key = %s, want %s", i, groups[i].Key, key)
		}
	}
	if groups[0].Count != 2 {
		t.Errorf("Westlands count = %d, want 2", groups[0].Count)
	}
}

func TestGroupByKey_Percentages(t *testing.T) {
	details := []models.ViolationDetail{
		detail("A", "X", "Speeding", "100", models.StatusUnpaid),
		detail("A", "X", "Speeding", "100", models.StatusUnpaid),
		detail("B", "X", "Speeding", "100", models.StatusUnpaid),
	}

	groups := GroupByKey(details, func(d models.ViolationDetail) string { return d.AreaName })

	if groups[0].Percentage != 66.7 {
		t.Errorf("groups[0].Percentage = %v, want 66.7", groups[0].Percentage)
	}
	if groups[1].Percentage != 33.3 {
		t.Errorf("groups[1].Percentage = %v, want 33.3", groups[1].Percentage)
	}

	var sum float64
	for _, g := range groups {
		sum += g.Percentage
	}
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestGroupByKey_Empty(t *testing.T) {
	groups := GroupByKey(nil, func(d models.ViolationDetail) string { return d.AreaName })
	if groups != nil {
		t.Errorf("GroupByKey(nil) = %v, want nil", groups)
	}
}

func TestViolationsByArea(t *testing.T) {
	details := []models.ViolationDetail{
		detail("Westlands", "Nairobi", "Speeding", "500", models.StatusPaid),
		detail("Westlands", "Nairobi", "Speeding", "1000", models.StatusUnpaid),
		detail("Nyali", "Mombasa", "Illegal Parking", "200", models.StatusUnpaid),
	}

	stats := ViolationsByArea(details)

	if len(stats) != 2 {
		t.Fatalf("got %d areas, want 2", len(stats))
	}
	w := stats[0]
	if w.AreaName != "Westlands" || w.City != "Nairobi" {
		t.Errorf("stats[0] = %s/%s, want Westlands/Nairobi", w.AreaName, w.City)
	}
	if w.ViolationCount != 2 {
		t.Errorf("Westlands count = %d, want 2", w.ViolationCount)
	}
	if !w.TotalFines.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Westlands total = %s, want 1500", w.TotalFines)
	}
	if !w.CollectedFines.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Westlands collected = %s, want 500", w.CollectedFines)
	}
}

func TestViolationsByArea_SameNameDifferentCity(t *testing.T) {
	details := []models.ViolationDetail{
		detail("Industrial Area", "Nairobi", "Speeding", "500", models.StatusUnpaid),
		detail("Industrial Area", "Mombasa", "Speeding", "300", models.StatusPaid),
		detail("Industrial Area", "Nairobi", "Illegal Parking", "200", models.StatusUnpaid),
	}

	stats := ViolationsByArea(details)

	if len(stats) != 2 {
		t.Fatalf("got %d areas, want 2 (same name in different cities must stay separate)", len(stats))
	}
	nairobi, mombasa := stats[0], stats[1]
	if nairobi.City != "Nairobi" || mombasa.City != "Mombasa" {
		t.Errorf("cities = %s, %s, want Nairobi then Mombasa", nairobi.City, mombasa.City)
	}
	if nairobi.ViolationCount != 2 || mombasa.ViolationCount != 1 {
		t.Errorf("counts = %d, %d, want 2, 1", nairobi.ViolationCount, mombasa.ViolationCount)
	}
	if !nairobi.TotalFines.Equal(decimal.NewFromInt(700)) {
		t.Errorf("Nairobi total = %s, want 700", nairobi.TotalFines)
	}
	if !mombasa.CollectedFines.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Mombasa collected = %s, want 300", mombasa.CollectedFines)
	}
	if nairobi.Percentage != 66.7 || mombasa.Percentage != 33.3 {
		t.Errorf("percentages = %v, %v, want 66.7, 33.3", nairobi.Percentage, mombasa.Percentage)
	}
}

func TestViolationsByType(t *testing.T) {
	details := []models.ViolationDetail{
		detail("A", "X", "Speeding", "400", models.StatusUnpaid),
		detail("B", "X", "Speeding", "600", models.StatusPaid),
		detail("A", "X", "No Seatbelt", "300", models.StatusUnpaid),
	}

	stats := ViolationsByType(details)

	if len(stats) != 2 {
		t.Fatalf("got %d types, want 2", len(stats))
	}
	s := stats[0]
	if s.TypeName != "Speeding" || s.OccurrenceCount != 2 {
		t.Errorf("stats[0] = %s x%d, want Speeding x2", s.TypeName, s.OccurrenceCount)
	}
	if !s.AverageFine.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Speeding average = %s, want 500", s.AverageFine)
	}
}

func TestDashboardStats(t *testing.T) {
	records := []models.Violation{
		violation("500", models.StatusPaid),
		violation("1000", models.StatusUnpaid),
		violation("300", models.StatusPaid),
	}

	got := DashboardStats(records)

	if got.TotalViolations != 3 {
		t.Errorf("TotalViolations = %d, want 3", got.TotalViolations)
	}
	if got.CollectionRate != 44.4 {
		t.Errorf("CollectionRate = %v, want 44.4", got.CollectionRate)
	}
	if got.PaidCount != 2 || got.UnpaidCount != 1 || got.DisputedCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/1/0", got.PaidCount, got.UnpaidCount, got.DisputedCount)
	}
	if !got.PendingAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("PendingAmount = %s, want 1000", got.PendingAmount)
	}
}
