// Package middleware provides HTTP middleware for the API
package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/solobooks/solobooks/internal/types"
)

// OwnerIDKey is the locals key the resolved owner ID is stored under
const OwnerIDKey = "ownerID"

// OwnerIDHeader carries the authenticated user's ID. Authentication itself
// is handled by the fronting proxy; this service only scopes data by the
// identity it is handed.
const OwnerIDHeader = "X-User-ID"

// RequireOwner resolves the owner ID from the request header and rejects
// requests without one
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(OwnerIDHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(types.ErrInvalidInput("missing " + OwnerIDHeader + " header"))
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(types.ErrInvalidInput("invalid " + OwnerIDHeader + " header"))
		}
		c.Locals(OwnerIDKey, uint(id))
		return c.Next()
	}
}

// OwnerID returns the owner ID resolved by RequireOwner
func OwnerID(c *fiber.Ctx) uint {
	id, _ := c.Locals(OwnerIDKey).(uint)
	return id
}
