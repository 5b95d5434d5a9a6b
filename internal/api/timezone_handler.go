package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Arallon-co/bettermeet/internal/timezone"
)

type timezonesResponse struct {
	Detected  string                    `json:"detected"`
	Timezones []timezone.TimezoneOption `json:"timezones"`
}

// ListTimezones serves the selector catalog. With a query it searches;
// without one it returns the full catalog.
func (h *Handler) ListTimezones(c *gin.Context) {
	query := c.Query("q")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var options []timezone.TimezoneOption
	if query != "" {
		options = timezone.SearchTimezones(query, limit)
	} else {
		options = timezone.AllTimezones()
	}

	c.JSON(http.StatusOK, timezonesResponse{
		Detected:  timezone.DetectUserTimezone(),
		Timezones: options,
	})
}
