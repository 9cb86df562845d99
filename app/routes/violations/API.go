package violations

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/services"
)

// GetViolationsAPI lists violations. Citizens only see their own records.
func GetViolationsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user := c.Locals("user").(*models.User)

	limit := c.QueryInt("limit", 100)
	var details []models.ViolationDetail
	var err error
	if user.Role == models.RoleCitizen {
		details, err = database.GetViolationsByUser(db, user.ID, limit)
	} else {
		details, err = database.GetAllViolations(db, limit)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}

	return c.JSON(fiber.Map{"success": true, "data": details})
}

// GetViolationAPI returns one violation with its payment history and the
// amount currently due including late fees.
func GetViolationAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid violation id"})
	}

	db := config.GetDB()
	detail, err := database.GetViolationByID(db, id)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Violation not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violation"})
	}

	// Citizens may only look at their own records
	user := c.Locals("user").(*models.User)
	if user.Role == models.RoleCitizen && (detail.UserID == nil || *detail.UserID != user.ID) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	payments, err := database.GetPaymentsByViolation(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"violation":  detail,
			"payments":   payments,
			"late_fee":   services.LateFee(detail.Violation, config.AppConfig.FineRules, time.Now()),
			"amount_due": services.AmountDue(detail.Violation, config.AppConfig.FineRules, time.Now()),
		},
	})
}

// SearchViolationsAPI matches by vehicle number or owner name.
func SearchViolationsAPI(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Search term required"})
	}

	details, err := database.SearchViolations(config.GetDB(), term)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
	}

	// Citizens can search their own records only
	user := c.Locals("user").(*models.User)
	if user.Role == models.RoleCitizen {
		own := []models.ViolationDetail{}
		for _, d := range details {
			if d.UserID != nil && *d.UserID == user.ID {
				own = append(own, d)
			}
		}
		details = own
	}

	return c.JSON(fiber.Map{"success": true, "data": details})
}

// GetByVehicleAPI lists the full history of one vehicle. Officers use this at
// the roadside to check for repeat offences.
func GetByVehicleAPI(c *fiber.Ctx) error {
	vehicle := strings.ToUpper(strings.TrimSpace(c.Params("vehicle")))
	if vehicle == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Vehicle number required"})
	}

	details, err := database.GetViolationsByVehicle(config.GetDB(), vehicle)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}
	return c.JSON(fiber.Map{"success": true, "data": details})
}

// RegisterViolationAPI creates a new violation. All field errors are reported
// in one response.
func RegisterViolationAPI(c *fiber.Ctx) error {
	var input services.RegistrationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	types, err := database.GetViolationTypes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violation types"})
	}
	areas, err := database.GetAreas(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load areas"})
	}

	officerID := c.Locals("user_id").(int)
	violation, err := services.ValidateRegistration(input, officerID, types, areas, time.Now())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return c.Status(400).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": verr.Fields,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Validation error"})
	}

	if err := database.CreateViolation(db, &violation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to register violation"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":      true,
		"message":      "Violation registered successfully",
		"violation_id": violation.ID,
	})
}

// UpdateStatusAPI moves a violation between statuses, enforcing the
// transition table. Marking paid must go through the payments API so a
// payment record is appended.
func UpdateStatusAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid violation id"})
	}

	type StatusRequest struct {
		Status models.ViolationStatus `json:"status"`
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.Status.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown status"})
	}
	if req.Status == models.StatusPaid {
		return c.Status(400).JSON(fiber.Map{"error": "Use the payments API to mark a violation paid"})
	}

	db := config.GetDB()
	detail, err := database.GetViolationByID(db, id)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Violation not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violation"})
	}

	if !services.CanTransition(detail.Status, req.Status) {
		return c.Status(409).JSON(fiber.Map{
			"error": "Cannot move violation from " + string(detail.Status) + " to " + string(req.Status),
		})
	}

	if err := database.UpdateViolationStatus(db, id, detail.Status, req.Status); err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return c.Status(409).JSON(fiber.Map{"error": "Violation status changed concurrently"})
		}
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Violation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Status updated successfully"})
}

func GetViolationTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetViolationTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violation types"})
	}
	return c.JSON(fiber.Map{"success": true, "data": types})
}

func GetAreasAPI(c *fiber.Ctx) error {
	areas, err := database.GetAreas(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load areas"})
	}
	return c.JSON(fiber.Map{"success": true, "data": areas})
}
