package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// parseInstant reads an RFC 3339 timestamp from the query string.
// A missing parameter yields the zero time.
func parseInstant(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// requireRange reads the mandatory from/to pair.
func requireRange(c *gin.Context) (from, to time.Time, ok bool) {
	from, okFrom := parseInstant(c, "from")
	to, okTo := parseInstant(c, "to")
	if !okFrom || !okTo || from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
