package handlers

import (
	"github.com/campusgate/uniportal/database"
	"github.com/gofiber/fiber/v2"
)

// Health reports service and database status
func Health(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"db":     "down",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
