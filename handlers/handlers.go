package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/accommodation"
	"wayfarer/catalog"
	"wayfarer/itinerary"
	"wayfarer/middleware"
	"wayfarer/services"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries the dependencies shared by every route.
type Handler struct {
	Catalog   *catalog.Catalog
	Assembler *itinerary.Assembler
	Simulator *accommodation.Simulator
	Enhancer  services.Enhancer
	Mailer    services.Mailer
	Volumes   services.VolumeStore
	Logger    *zap.Logger

	Sender         string
	AdminEmail     string
	MailDriver     string
	VolumeBackend  string
	VolumePinger   Pinger
	EmailTimeout   time.Duration
	EnhanceTimeout time.Duration

	// Now is replaced in tests.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// log is the request-scoped logger when the request logger middleware ran.
func (h *Handler) log(c *gin.Context) *zap.Logger {
	return middleware.LoggerFrom(c, h.Logger)
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.POST("/plan", h.Plan)
	r.POST("/accommodations", h.Accommodations)
	r.POST("/track-booking", h.TrackBooking)
	r.GET("/places/:destination", h.Places)
	r.POST("/send-itinerary", h.SendItinerary)
	r.POST("/contact", h.Contact)
	r.POST("/itinerary/pdf", h.ItineraryPDF)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// numeric accepts a JSON number or a numeric string, since HTML form values
// often arrive quoted. NaN and infinities are rejected.
type numeric float64

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v is not a finite number", v)
	}
	return nil
}

func (n *numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		if err := finite(v); err != nil {
			return err
		}
		*n = numeric(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = numeric(v)
	return nil
}

// isValidEmail does the same shallow check the mail workers do: one @, and a
// dot in the domain.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t\r\n<>") {
		return false
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	return strings.Contains(parts[1], ".") && !strings.HasPrefix(parts[1], ".") && !strings.HasSuffix(parts[1], ".")
}
