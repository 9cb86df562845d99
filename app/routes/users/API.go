package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

// GetUsersAPI lists users, optionally filtered by role. Officers use this to
// look up citizens when registering a violation against a known owner.
func GetUsersAPI(c *fiber.Ctx) error {
	role := c.Query("role")
	if role != "" && !models.Role(role).IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	usersList, err := database.GetAllUsers(config.GetDB(), role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(fiber.Map{"success": true, "data": usersList})
}

// SearchUsersAPI matches users by name, username, or email.
func SearchUsersAPI(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Search term required"})
	}

	usersList, err := database.SearchUsers(config.GetDB(), term)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
	}
	return c.JSON(fiber.Map{"success": true, "data": usersList})
}
