package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports liveness in the API namespace
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(true)
}

// Health is the probe endpoint used by load balancers
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
