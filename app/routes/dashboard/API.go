package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/routes/auth"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/services"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)

	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

// GetDashboard renders the dashboard page
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"FullName":    user.FullName,
		"Role":        user.Role,
		"user":        user,
		"Actions":     c.Locals("Actions"),
	})
}

// GetStatsAPI returns the dashboard statistics for the active user. Citizens
// see only their own violations; officers and admins see everything.
func GetStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user := c.Locals("user").(*models.User)

	var details []models.ViolationDetail
	var err error
	if user.Role == models.RoleCitizen {
		details, err = database.GetViolationsByUser(db, user.ID, 0)
	} else {
		details, err = database.GetAllViolations(db, 0)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	stats := services.DashboardStats(models.Records(details))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
