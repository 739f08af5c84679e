package utils

import (
	"fmt"
	"net/url"
	"tchadskills/config"

	"github.com/gofiber/fiber/v2"
)

// PageParam reads the ?page= query parameter, defaulting to 1.
func PageParam(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// PageSize returns the fixed page size from configuration.
func PageSize() int {
	if config.AppConfig != nil && config.AppConfig.PageSize > 0 {
		return config.AppConfig.PageSize
	}
	return 20
}

// Paginated builds the list envelope {count, next, previous, results}.
// next/previous are absolute URLs preserving the other query parameters.
func Paginated(c *fiber.Ctx, count int64, page, pageSize int, results interface{}) fiber.Map {
	var next, previous interface{}

	if int64(page*pageSize) < count {
		next = pageURL(c, page+1)
	}
	if page > 1 {
		previous = pageURL(c, page-1)
	}

	return fiber.Map{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageURL(c *fiber.Ctx, page int) string {
	values := url.Values{}
	for k, v := range c.Queries() {
		values.Set(k, v)
	}
	values.Set("page", fmt.Sprintf("%d", page))
	return c.BaseURL() + c.Path() + "?" + values.Encode()
}
