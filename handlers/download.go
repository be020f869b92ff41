package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/catalog"
	"wayfarer/itinerary"
	"wayfarer/services"
)

// DownloadRequest carries either finished itinerary text or the trip details to
// assemble one from.
type DownloadRequest struct {
	Itinerary    string  `json:"itinerary"`
	Destination  string  `json:"destination"`
	Duration     numeric `json:"duration"`
	Budget       numeric `json:"budget"`
	Currency     string  `json:"currency"`
	TravelWith   string  `json:"travelWith"`
	TravelerName string  `json:"travelerName"`
	GeneratedBy  string  `json:"generatedBy"`
}

// ItineraryPDF streams the itinerary as a PDF attachment, or as HTML when the
// PDF cannot be produced.
func (h *Handler) ItineraryPDF(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	doc := services.Document{
		TravelerName: req.TravelerName,
		Destination:  strings.TrimSpace(req.Destination),
		Duration:     int(req.Duration),
		Text:         req.Itinerary,
		GeneratedBy:  req.GeneratedBy,
		GeneratedAt:  h.now().UTC(),
	}

	if strings.TrimSpace(doc.Text) == "" {
		if doc.Destination == "" {
			badRequest(c, "Either itinerary text or a destination is required")
			return
		}
		it, err := h.Assembler.Assemble(itinerary.Request{
			Destination: doc.Destination,
			Duration:    doc.Duration,
			Budget:      float64(req.Budget),
			Currency:    req.Currency,
			Companion:   catalog.ParseCompanion(req.TravelWith),
		})
		if errors.Is(err, itinerary.ErrInvalidDuration) {
			badRequest(c, "Duration must be at least 1 day")
			return
		}
		if err != nil {
			h.log(c).Error("Itinerary assembly failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate itinerary"})
			return
		}
		doc.Text = itinerary.RenderText(it)
		doc.Duration = it.Duration
		if doc.GeneratedBy == "" {
			doc.GeneratedBy = sourceTemplate
		}
	}

	rendered, err := services.RenderDocument(doc)
	if err != nil {
		h.log(c).Error("Itinerary document rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create itinerary document"})
		return
	}

	c.Header("Content-Type", rendered.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName()+"."+rendered.Extension))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, rendered.ContentType, rendered.Data)
}

func (h *Handler) Health(c *gin.Context) {
	volumeStatus := "ok"
	if h.VolumePinger != nil {
		if err := h.VolumePinger.Ping(c.Request.Context()); err != nil {
			volumeStatus = "error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"service":       "Wayfarer API",
		"mailDriver":    h.MailDriver,
		"volumeBackend": h.VolumeBackend,
		"volumeStore":   volumeStatus,
		"cities":        h.Catalog.Cities(),
	})
}
