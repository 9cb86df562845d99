package models

import "github.com/shopspring/decimal"

// DashboardStats bundles the figures shown on the dashboard. For citizens the
// numbers cover only their own violations; officers and admins see the whole
// record set.
type DashboardStats struct {
	TotalViolations int             `json:"total_violations"`
	TotalFines      decimal.Decimal `json:"total_fines"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	CollectionRate  float64         `json:"collection_rate"`
	AverageFine     decimal.Decimal `json:"average_fine"`
	PaidCount       int             `json:"paid_count"`
	UnpaidCount     int             `json:"unpaid_count"`
	DisputedCount   int             `json:"disputed_count"`
}

// AreaStats aggregates violations recorded in one area.
type AreaStats struct {
	AreaName       string          `json:"area_name"`
	City           string          `json:"city"`
	ViolationCount int             `json:"violation_count"`
	Percentage     float64         `json:"percentage"`
	TotalFines     decimal.Decimal `json:"total_fines"`
	CollectedFines decimal.Decimal `json:"collected_fines"`
}

// TypeStats aggregates violations of one violation type.
type TypeStats struct {
	TypeName        string          `json:"type_name"`
	OccurrenceCount int             `json:"occurrence_count"`
	Percentage      float64         `json:"percentage"`
	TotalFines      decimal.Decimal `json:"total_fines"`
	AverageFine     decimal.Decimal `json:"avg_fine"`
}

// MonthlyTrend summarises one calendar month of violations.
type MonthlyTrend struct {
	Month           string          `json:"month"`
	TotalViolations int             `json:"total_violations"`
	TotalFines      decimal.Decimal `json:"total_fines"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	PaidCount       int             `json:"paid_count"`
	UnpaidCount     int             `json:"unpaid_count"`
}

// OfficerPerformance summarises the registrations of one officer.
type OfficerPerformance struct {
	OfficerName    string          `json:"officer_name"`
	Email          string          `json:"email"`
	Registered     int             `json:"violations_registered"`
	TotalImposed   decimal.Decimal `json:"total_fines_imposed"`
	PaidCount      int             `json:"paid_count"`
	UnpaidCount    int             `json:"unpaid_count"`
	CollectionRate float64         `json:"collection_rate"`
}

// TopViolator is a vehicle with repeat violations.
type TopViolator struct {
	VehicleNumber  string          `json:"vehicle_number"`
	OwnerName      string          `json:"owner_name,omitempty"`
	ViolationCount int             `json:"violation_count"`
	TotalFines     decimal.Decimal `json:"total_fines"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount"`
}

// DailyCount is the violation volume for a single day.
type DailyCount struct {
	Date           string          `json:"date"`
	ViolationCount int             `json:"violation_count"`
	TotalFines     decimal.Decimal `json:"total_fines"`
}

// HourCount is the violation volume for one hour of the day across all records.
type HourCount struct {
	Hour           int `json:"hour"`
	ViolationCount int `json:"violation_count"`
}

// MethodStats aggregates payments by method.
type MethodStats struct {
	Method        PaymentMethod   `json:"payment_method"`
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"avg_amount"`
}
