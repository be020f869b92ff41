package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/catalog"
	"wayfarer/itinerary"
	"wayfarer/metrics"
)

const (
	sourceAI       = "huggingface"
	sourceTemplate = "template"
)

type PlanRequest struct {
	Destination       string  `json:"destination"`
	Budget            numeric `json:"budget"`
	Duration          numeric `json:"duration"`
	Currency          string  `json:"currency"`
	TravelWith        string  `json:"travelWith"`
	UserLocation      string  `json:"userLocation"`
	NeedAccommodation bool    `json:"needAccommodation"`
}

type PlanResponse struct {
	Destination       string               `json:"destination"`
	Budget            float64              `json:"budget"`
	Duration          int                  `json:"duration"`
	Currency          string               `json:"currency"`
	TravelWith        catalog.Companion    `json:"travelWith"`
	UserLocation      string               `json:"userLocation"`
	NeedAccommodation bool                 `json:"needAccommodation"`
	Plan              string               `json:"plan"`
	Days              []itinerary.DayPlan  `json:"days"`
	TripBudget        itinerary.Allocation `json:"tripBudget"`
	DailyBudget       itinerary.Allocation `json:"dailyBudget"`
	GeneratedBy       string               `json:"generated_by"`
}

// Plan assembles an itinerary and, when the text generator is reachable, uses
// its prose for the plan text. The structured days always come from the catalog.
func (h *Handler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		badRequest(c, "Destination is required")
		return
	}
	if req.Budget < 0 {
		badRequest(c, "Budget cannot be negative")
		return
	}

	ireq := itinerary.Request{
		Destination: req.Destination,
		Duration:    int(req.Duration),
		Budget:      float64(req.Budget),
		Currency:    req.Currency,
		Companion:   catalog.ParseCompanion(req.TravelWith),
	}

	it, err := h.Assembler.Assemble(ireq)
	if errors.Is(err, itinerary.ErrInvalidDuration) {
		badRequest(c, "Duration must be at least 1 day")
		return
	}
	if err != nil {
		h.log(c).Error("Itinerary assembly failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate itinerary"})
		return
	}

	ireq.Duration = it.Duration
	ireq.Currency = it.Currency
	text, source := h.planText(c.Request.Context(), h.log(c), ireq, it)
	metrics.ObserveItinerary(source)

	h.log(c).Info("✅ Itinerary generated",
		zap.String("destination", it.CityName),
		zap.Int("days", it.Duration),
		zap.String("companion", string(it.Companion)),
		zap.String("source", source),
	)

	c.JSON(http.StatusOK, PlanResponse{
		Destination:       req.Destination,
		Budget:            it.Budget,
		Duration:          it.Duration,
		Currency:          it.Currency,
		TravelWith:        it.Companion,
		UserLocation:      req.UserLocation,
		NeedAccommodation: req.NeedAccommodation,
		Plan:              text,
		Days:              it.Days,
		TripBudget:        it.TripBudget,
		DailyBudget:       it.DailyBudget,
		GeneratedBy:       source,
	})
}

func (h *Handler) planText(ctx context.Context, log *zap.Logger, req itinerary.Request, it itinerary.Itinerary) (string, string) {
	if h.Enhancer == nil {
		return itinerary.RenderText(it), sourceTemplate
	}
	if h.EnhanceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.EnhanceTimeout)
		defer cancel()
	}

	enh, err := h.Enhancer.Enhance(ctx, itinerary.Prompt(req))
	metrics.ObserveEnhancement(err == nil)
	if err != nil {
		log.Debug("Using template itinerary", zap.Error(err))
		return itinerary.RenderText(it), sourceTemplate
	}
	return enh.Text, sourceAI
}
