package payments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/routes/auth"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), GetPaymentsAPI)
	api.Get("/methods", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), GetMethodDistributionAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleOfficer, models.RoleAdmin), RecordPaymentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), RefundPaymentAPI)
}
