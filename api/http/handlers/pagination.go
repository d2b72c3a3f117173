package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// maxPageSize caps ?limit= on list endpoints.
const maxPageSize = 200

// parseLimitOffset reads ?limit= and ?offset=. Out-of-range or malformed
// values fall back to defLimit and 0.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = c.QueryInt("limit", defLimit)
	if limit <= 0 || limit > maxPageSize {
		limit = defLimit
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
