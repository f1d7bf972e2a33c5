package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parsePagination(c *fiber.Ctx) (*int, *int) {
	var limit, page *int
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		page = &v
	}
	return limit, page
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
