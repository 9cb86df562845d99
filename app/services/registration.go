package services

import (
	"strings"
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/shopspring/decimal"
)

// RegistrationInput carries the raw fields of a violation registration form.
type RegistrationInput struct {
	VehicleNumber string `json:"vehicle_number"`
	UserID        *int   `json:"user_id,omitempty"`
	TypeID        int    `json:"type_id"`
	AreaID        int    `json:"area_id"`
	ViolationDate string `json:"violation_date"`
	FineAmount    string `json:"fine_amount,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Accepted layouts for the violation date field. HTML datetime-local inputs
// produce the first form.
var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ValidateRegistration checks every field of a registration and returns a
// violation ready for the store, or a ValidationError listing all violated
// constraints at once. The fine amount defaults to the type's base fine when
// no override is supplied. The returned record always starts unpaid with no
// identifier; the store assigns one on insert.
func ValidateRegistration(input RegistrationInput, officerID int, types []models.ViolationType, areas []models.Area, now time.Time) (models.Violation, error) {
	verr := &models.ValidationError{}

	vehicle := strings.ToUpper(strings.TrimSpace(input.VehicleNumber))
	if vehicle == "" {
		verr.Add("vehicle_number", "vehicle number is required")
	} else if len(vehicle) < 4 {
		verr.Add("vehicle_number", "vehicle number must be at least 4 characters")
	}

	var vt *models.ViolationType
	if input.TypeID <= 0 {
		verr.Add("type_id", "violation type is required")
	} else {
		for i := range types {
			if types[i].ID == input.TypeID {
				vt = &types[i]
				break
			}
		}
		if vt == nil {
			verr.Add("type_id", "unknown violation type")
		}
	}

	areaOK := false
	if input.AreaID <= 0 {
		verr.Add("area_id", "area is required")
	} else {
		for _, a := range areas {
			if a.ID == input.AreaID {
				areaOK = true
				break
			}
		}
		if !areaOK {
			verr.Add("area_id", "unknown area")
		}
	}

	var violationDate time.Time
	if strings.TrimSpace(input.ViolationDate) == "" {
		verr.Add("violation_date", "violation date is required")
	} else {
		parsed := false
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, strings.TrimSpace(input.ViolationDate), now.Location()); err == nil {
				violationDate = t
				parsed = true
				break
			}
		}
		if !parsed {
			verr.Add("violation_date", "invalid date format")
		} else if violationDate.After(now) {
			verr.Add("violation_date", "violation date cannot be in the future")
		}
	}

	fine := decimal.Zero
	if strings.TrimSpace(input.FineAmount) == "" {
		if vt != nil {
			fine = vt.BaseFine
		}
	} else {
		parsed, err := decimal.NewFromString(strings.TrimSpace(input.FineAmount))
		switch {
		case err != nil:
			verr.Add("fine_amount", "invalid amount")
		case parsed.IsNegative():
			verr.Add("fine_amount", "fine amount cannot be negative")
		case !parsed.Round(2).Equal(parsed):
			verr.Add("fine_amount", "fine amount can have at most 2 decimal places")
		default:
			fine = parsed
		}
	}

	if verr.HasErrors() {
		return models.Violation{}, verr
	}

	return models.Violation{
		VehicleNumber: vehicle,
		UserID:        input.UserID,
		TypeID:        input.TypeID,
		AreaID:        input.AreaID,
		OfficerID:     officerID,
		ViolationDate: violationDate,
		FineAmount:    fine,
		Status:        models.StatusUnpaid,
		Notes:         strings.TrimSpace(input.Notes),
	}, nil
}
