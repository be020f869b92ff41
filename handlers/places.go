package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Places returns a city's catalog, optionally narrowed by ?requirement=.
func (h *Handler) Places(c *gin.Context) {
	dest := strings.TrimSpace(c.Param("destination"))
	if dest == "" {
		badRequest(c, "Destination is required")
		return
	}

	city := h.Catalog.Resolve(dest)
	c.JSON(http.StatusOK, gin.H{
		"destination": dest,
		"city":        city.Name,
		"generic":     city.Generic,
		"places":      city.Filter(c.Query("requirement")),
	})
}
