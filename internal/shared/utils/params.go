package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads the skip/limit query parameters. Range enforcement
// happens in the repository layer; this only parses.
func ParsePagination(c *gin.Context) (skip, limit int) {
	skip = 0
	if s := c.Query("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			skip = v
		}
	}

	limit = 100
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	return skip, limit
}

// ParseID reads an integer path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// ParseOptionalInt reads an optional integer query parameter.
func ParseOptionalInt(c *gin.Context, name string) *int64 {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
