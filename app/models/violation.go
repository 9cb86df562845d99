package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Violation represents a recorded traffic violation.
type Violation struct {
	ID            int             `json:"violation_id"`
	VehicleNumber string          `json:"vehicle_number"`
	UserID        *int            `json:"user_id,omitempty"`
	TypeID        int             `json:"type_id"`
	AreaID        int             `json:"area_id"`
	OfficerID     int             `json:"officer_id"`
	ViolationDate time.Time       `json:"violation_date"`
	FineAmount    decimal.Decimal `json:"fine_amount"`
	Status        ViolationStatus `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsPaid reports whether the fine has been settled.
func (v Violation) IsPaid() bool { return v.Status == StatusPaid }

// ViolationDetail is a violation joined with its master-data names for display.
type ViolationDetail struct {
	Violation
	TypeName    string `json:"type_name"`
	AreaName    string `json:"area_name"`
	City        string `json:"city"`
	OfficerName string `json:"officer_name"`
	OwnerName   string `json:"owner_name,omitempty"`
}

// Records extracts the bare violation rows from a joined result set, for
// handing to the aggregation functions.
func Records(details []ViolationDetail) []Violation {
	records := make([]Violation, len(details))
	for i, d := range details {
		records[i] = d.Violation
	}
	return records
}

// ViolationType is master data describing an offence and its default fine.
type ViolationType struct {
	ID          int             `json:"type_id"`
	Name        string          `json:"type_name"`
	BaseFine    decimal.Decimal `json:"base_fine"`
	Description string          `json:"description,omitempty"`
}

// Area is master data describing a location where violations are recorded.
type Area struct {
	ID   int    `json:"area_id"`
	Name string `json:"area_name"`
	City string `json:"city"`
}
