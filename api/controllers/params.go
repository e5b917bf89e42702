package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, key string) (uint, bool) {
	raw := c.Params(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
