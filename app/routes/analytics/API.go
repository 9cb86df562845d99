package analytics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/services"
)

// GetSummaryAPI assembles the headline report: overall totals plus the top
// areas and types and the recent monthly trend.
func GetSummaryAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	details, err := database.GetAllViolations(db, 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}
	records := models.Records(details)

	byArea := services.ViolationsByArea(details)
	if len(byArea) > 5 {
		byArea = byArea[:5]
	}
	byType := services.ViolationsByType(details)
	if len(byType) > 5 {
		byType = byType[:5]
	}

	trends, err := GetMonthlyTrends(db, 3)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trends"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"collection_efficiency": services.DashboardStats(records),
			"status_breakdown":      services.ComputeStatusBreakdown(records),
			"top_areas":             byArea,
			"top_violation_types":   byType,
			"recent_trends":         trends,
		},
	})
}

// GetByAreaAPI computes the by-area breakdown over a snapshot of all records.
func GetByAreaAPI(c *fiber.Ctx) error {
	details, err := database.GetAllViolations(config.GetDB(), 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}
	return c.JSON(fiber.Map{"success": true, "data": services.ViolationsByArea(details)})
}

// GetByTypeAPI computes the by-type breakdown over a snapshot of all records.
func GetByTypeAPI(c *fiber.Ctx) error {
	details, err := database.GetAllViolations(config.GetDB(), 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}
	return c.JSON(fiber.Map{"success": true, "data": services.ViolationsByType(details)})
}

// GetCollectionEfficiencyAPI returns the totals, counts, and collection rate.
func GetCollectionEfficiencyAPI(c *fiber.Ctx) error {
	details, err := database.GetAllViolations(config.GetDB(), 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load violations"})
	}
	return c.JSON(fiber.Map{"success": true, "data": services.DashboardStats(models.Records(details))})
}

func GetTrendsAPI(c *fiber.Ctx) error {
	months := c.QueryInt("months", 12)
	trends, err := GetMonthlyTrends(config.GetDB(), months)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trends"})
	}
	return c.JSON(fiber.Map{"success": true, "data": trends})
}

func GetTopViolatorsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	violators, err := GetTopViolators(config.GetDB(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load top violators"})
	}
	return c.JSON(fiber.Map{"success": true, "data": violators})
}

func GetOfficerPerformanceAPI(c *fiber.Ctx) error {
	performance, err := GetOfficerPerformance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load officer performance"})
	}
	return c.JSON(fiber.Map{"success": true, "data": performance})
}

func GetDailyAPI(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	counts, err := GetDailyViolations(config.GetDB(), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load daily counts"})
	}
	return c.JSON(fiber.Map{"success": true, "data": counts})
}

func GetPeakHoursAPI(c *fiber.Ctx) error {
	hours, err := GetPeakHours(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load peak hours"})
	}
	return c.JSON(fiber.Map{"success": true, "data": hours})
}
