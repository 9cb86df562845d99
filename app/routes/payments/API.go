package payments

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/services"
	"github.com/shopspring/decimal"
)

// RecordPaymentAPI settles a violation: the status check, payment insert and
// status flip run atomically in the store.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		ViolationID int                  `json:"violation_id"`
		Amount      string               `json:"amount,omitempty"`
		Method      models.PaymentMethod `json:"payment_method"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.Method.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown payment method"})
	}

	db := config.GetDB()
	detail, err := database.GetViolationByID(db, req.ViolationID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Violation not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violation"})
	}

	// Default to the full fine amount
	amount := detail.FineAmount
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil || amount.IsNegative() {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid payment amount"})
		}
	}

	// Snapshot-level transition check; the store re-checks under a row lock.
	payment, err := services.MarkPaid(&detail.Violation, amount, req.Method, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return c.Status(409).JSON(fiber.Map{"error": "Violation is already paid"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.MarkViolationPaid(db, payment); err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return c.Status(409).JSON(fiber.Map{"error": "Violation was paid concurrently"})
		}
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Violation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// GetPaymentsAPI lists payments newest first.
func GetPaymentsAPI(c *fiber.Ctx) error {
	paymentsList, err := database.GetAllPayments(config.GetDB(), c.QueryInt("limit", 100))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(fiber.Map{"success": true, "data": paymentsList})
}

// GetMethodDistributionAPI aggregates payments by method.
func GetMethodDistributionAPI(c *fiber.Ctx) error {
	stats, err := database.PaymentMethodDistribution(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payment methods"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// RefundPaymentAPI removes a payment and returns the violation to unpaid.
func RefundPaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	if err := database.RefundPayment(config.GetDB(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to refund payment"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Payment refunded"})
}
