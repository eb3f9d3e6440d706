package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ParsePagination reads page/limit query params with the list defaults.
// Pages are 1-based on the wire.
func ParsePagination(c *gin.Context) (page int, limit int) {
	page = 1
	limit = DefaultPageLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
			if limit > MaxPageLimit {
				limit = MaxPageLimit
			}
		}
	}
	return page, limit
}
