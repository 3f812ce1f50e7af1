package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/stats"
	"github.com/teamboard/teamboard/internal/store"
)

// yearParam parses an optional ?year= query. Absent or malformed values
// mean "all years".
func yearParam(c *gin.Context) *int {
	raw := c.Query("year")
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

// bandParam parses the optional ?band= query, defaulting to "all".
func bandParam(c *gin.Context) string {
	band := c.Query("band")
	if band == "" {
		return stats.BandFilterAll
	}
	return band
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts a plain calendar date or a full RFC3339 timestamp.
func parseDate(raw string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date, expected YYYY-MM-DD")
}

func notFoundOrServerError(c *gin.Context, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + what})
}
