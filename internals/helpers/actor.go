// file: internals/helpers/actor.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetActorID mengambil id user yang sudah ditaruh auth middleware di Locals.
func GetActorID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid user id")
	}
	return id, nil
}

// GetActorRoles mengambil daftar role dari Locals (diisi auth middleware).
func GetActorRoles(c *fiber.Ctx) []string {
	roles, ok := c.Locals("userRoles").([]string)
	if !ok {
		return nil
	}
	return roles
}
