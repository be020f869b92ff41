package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wayfarer/accommodation"
	"wayfarer/metrics"
)

type TrackBookingRequest struct {
	Provider          string  `json:"provider"`
	BookingURL        string  `json:"bookingUrl"`
	AccommodationName string  `json:"accommodationName"`
	TotalPrice        numeric `json:"totalPrice"`
	Commission        numeric `json:"commission"`
	UserID            string  `json:"userId"`
}

type TrackBookingResponse struct {
	Success            bool                  `json:"success"`
	TrackingID         string                `json:"trackingId"`
	ExpectedCommission float64               `json:"expectedCommission"`
	RedirectURL        string                `json:"redirectUrl"`
	MonthlyVolume      int64                 `json:"monthlyVolume"`
	ProjectedRevenue   accommodation.Revenue `json:"projectedRevenue"`
}

// TrackBooking records an outbound booking click. Nothing is persisted beyond
// the log line and the monthly volume counter.
func (h *Handler) TrackBooking(c *gin.Context) {
	var req TrackBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	req.BookingURL = strings.TrimSpace(req.BookingURL)
	if req.BookingURL == "" {
		badRequest(c, "bookingUrl is required")
		return
	}
	if !isSafeRedirect(req.BookingURL) {
		badRequest(c, "bookingUrl must be an absolute https URL")
		return
	}

	providerLabel := "other"
	if p, ok := accommodation.LookupProvider(req.Provider); ok {
		providerLabel = p.Name
	}
	metrics.ObserveBookingClick(providerLabel)

	// best effort: a counter outage must not block the redirect
	var volume int64
	if h.Volumes != nil && providerLabel != "other" {
		n, err := h.Volumes.Increment(c.Request.Context(), providerLabel, h.now())
		if err != nil {
			h.log(c).Warn("Booking volume counter unavailable", zap.Error(err))
		} else {
			volume = n
		}
	}

	revenue := accommodation.CalculateRevenue(float64(req.TotalPrice), req.Provider, int(volume))
	expected := float64(req.Commission)
	if expected == 0 {
		expected = revenue.Revenue
	}

	trackingID := uuid.New().String()
	h.log(c).Info("📈 Booking click tracked",
		zap.String("trackingId", trackingID),
		zap.String("provider", req.Provider),
		zap.String("accommodation", req.AccommodationName),
		zap.Float64("totalPrice", float64(req.TotalPrice)),
		zap.Float64("expectedCommission", expected),
		zap.String("userId", req.UserID),
		zap.Int64("monthlyVolume", volume),
	)

	c.JSON(http.StatusOK, TrackBookingResponse{
		Success:            true,
		TrackingID:         trackingID,
		ExpectedCommission: expected,
		RedirectURL:        req.BookingURL,
		MonthlyVolume:      volume,
		ProjectedRevenue:   revenue,
	})
}

// isSafeRedirect accepts only absolute https URLs; every provider link is one.
func isSafeRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "https") && u.Host != "" && u.User == nil
}
