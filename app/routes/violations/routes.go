package violations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/routes/auth"
)

func SetupViolationsRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/violations")
	web.Use(auth.AuthMiddleware)
	web.Get("/", ViolationsPageHandler)
	web.Get("/register", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), RegisterPageHandler)

	// API Routes
	api := app.Group("/api/violations")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetViolationsAPI)
	api.Get("/search", SearchViolationsAPI)
	api.Get("/vehicle/:vehicle", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), GetByVehicleAPI)
	api.Get("/:id", GetViolationAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), RegisterViolationAPI)
	api.Put("/:id/status", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), UpdateStatusAPI)

	// Reference data
	refs := app.Group("/api")
	refs.Use(auth.AuthMiddleware)
	refs.Get("/violation-types", GetViolationTypesAPI)
	refs.Get("/areas", GetAreasAPI)
}

func ViolationsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("violations/index", fiber.Map{
		"Title":       "Violations",
		"CurrentPage": "violations",
		"FullName":    user.FullName,
		"Role":        user.Role,
		"user":        user,
		"Actions":     c.Locals("Actions"),
	})
}

func RegisterPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("violations/register", fiber.Map{
		"Title":       "Register Violation",
		"CurrentPage": "register",
		"FullName":    user.FullName,
		"Role":        user.Role,
		"user":        user,
		"Actions":     c.Locals("Actions"),
	})
}
