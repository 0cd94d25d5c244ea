package handlers

import (
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
)

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidID)
	}
	return uint(id), nil
}
