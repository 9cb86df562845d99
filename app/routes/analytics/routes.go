package analytics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/routes/auth"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/analytics")
	web.Use(auth.AuthMiddleware)
	web.Use(auth.RoleMiddleware(models.RoleAdmin))
	web.Get("/", AnalyticsPageHandler)

	// API Routes
	api := app.Group("/api/analytics")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/summary", GetSummaryAPI)
	api.Get("/by-area", GetByAreaAPI)
	api.Get("/by-type", GetByTypeAPI)
	api.Get("/collection-efficiency", GetCollectionEfficiencyAPI)
	api.Get("/trends", GetTrendsAPI)
	api.Get("/top-violators", GetTopViolatorsAPI)
	api.Get("/officer-performance", GetOfficerPerformanceAPI)
	api.Get("/daily", GetDailyAPI)
	api.Get("/peak-hours", GetPeakHoursAPI)
}

func AnalyticsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("analytics/index", fiber.Map{
		"Title":       "Analytics",
		"CurrentPage": "analytics",
		"FullName":    user.FullName,
		"Role":        user.Role,
		"user":        user,
		"Actions":     c.Locals("Actions"),
	})
}
