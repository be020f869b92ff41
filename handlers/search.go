package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/accommodation"
	"wayfarer/metrics"
)

const dateLayout = "2006-01-02"

type AccommodationRequest struct {
	Destination  string  `json:"destination"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	Guests       numeric `json:"guests"`
	Currency     string  `json:"currency"`
	TripDuration numeric `json:"tripDuration"`
}

type AccommodationData struct {
	Accommodations    []accommodation.Listing         `json:"accommodations"`
	CommissionSummary accommodation.CommissionSummary `json:"commissionSummary"`
	Nights            int                             `json:"nights"`
}

// Accommodations returns simulated listings for a stay. Prices are jittered on
// every call.
func (h *Handler) Accommodations(c *gin.Context) {
	var req AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		badRequest(c, "Destination is required")
		return
	}

	checkIn, err := time.Parse(dateLayout, strings.TrimSpace(req.CheckIn))
	if err != nil {
		badRequest(c, "Invalid check-in date format. Use YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, strings.TrimSpace(req.CheckOut))
	if err != nil {
		badRequest(c, "Invalid check-out date format. Use YYYY-MM-DD")
		return
	}

	guests := int(req.Guests)
	if guests <= 0 {
		guests = 1
	}

	listings, err := h.Simulator.Simulate(accommodation.Request{
		Destination:  req.Destination,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       guests,
		Currency:     req.Currency,
		TripDuration: int(req.TripDuration),
	})

	var dateErr *accommodation.DateRangeError
	if errors.As(err, &dateErr) {
		metrics.ObserveAccommodationSearch("rejected")
		body := gin.H{"success": false, "error": dateErr.Message, "nights": dateErr.Nights}
		if !dateErr.MinCheckOut.IsZero() {
			body["minCheckOut"] = dateErr.MinCheckOut.Format(dateLayout)
		}
		if !dateErr.SuggestedCheckOut.IsZero() {
			body["suggestedCheckOut"] = dateErr.SuggestedCheckOut.Format(dateLayout)
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}
	if err != nil {
		metrics.ObserveAccommodationSearch("error")
		h.log(c).Error("Accommodation search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch accommodations"})
		return
	}

	metrics.ObserveAccommodationSearch("ok")
	nights := accommodation.Nights(checkIn, checkOut)
	h.log(c).Info("🏨 Accommodations simulated",
		zap.String("destination", req.Destination),
		zap.Int("nights", nights),
		zap.Int("listings", len(listings)),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": AccommodationData{
			Accommodations:    listings,
			CommissionSummary: accommodation.Summarize(listings),
			Nights:            nights,
		},
	})
}
