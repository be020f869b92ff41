package handlers

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wayfarer/metrics"
	"wayfarer/services"
)

type SendItineraryRequest struct {
	Email        string  `json:"email"`
	Itinerary    string  `json:"itinerary"`
	Destination  string  `json:"destination"`
	Duration     numeric `json:"duration"`
	TravelerName string  `json:"travelerName"`
	GeneratedBy  string  `json:"generatedBy"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) sendCtx(parent context.Context) (context.Context, context.CancelFunc) {
	if h.EmailTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.EmailTimeout)
}

func (h *Handler) mailFailure(c *gin.Context, err error, extra gin.H) {
	f := services.ClassifyMailError(err)
	h.log(c).Error("❌ Email delivery failed",
		zap.String("code", string(f.Code)),
		zap.Error(err),
	)
	body := gin.H{
		"success":         false,
		"error":           f.Message,
		"code":            f.Code,
		"suggestion":      f.Suggestion,
		"troubleshooting": f.Troubleshooting,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusInternalServerError, body)
}

// SendItinerary renders the itinerary text to a document and emails it as an
// attachment. One attempt is made, bounded by EmailTimeout.
func (h *Handler) SendItinerary(c *gin.Context) {
	var req SendItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !isValidEmail(req.Email) {
		badRequest(c, "A valid email address is required")
		return
	}
	if strings.TrimSpace(req.Itinerary) == "" {
		badRequest(c, "Itinerary content is required")
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

	rendered, err := services.RenderDocument(doc)
	if err != nil {
		h.log(c).Error("Itinerary document rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":         false,
			"error":           "Failed to create itinerary document",
			"documentCreated": false,
			"emailSent":       false,
		})
		return
	}
	if rendered.Format != "pdf" {
		h.log(c).Warn("PDF rendering failed, sending HTML itinerary instead")
	}

	dest := doc.Destination
	if dest == "" {
		dest = "your trip"
	}
	msg := services.Message{
		From:    h.Sender,
		To:      []string{req.Email},
		Subject: fmt.Sprintf("Your %s itinerary", dest),
		Text: fmt.Sprintf("Hi,\n\nYour itinerary for %s is attached.\n\nHappy travels!\nWayfarer", dest),
		HTML: fmt.Sprintf("<p>Hi,</p><p>Your itinerary for <strong>%s</strong> is attached.</p><p>Happy travels!<br>Wayfarer</p>",
			html.EscapeString(dest)),
		Attachments: []services.Attachment{{
			Filename:    doc.FileName() + "." + rendered.Extension,
			ContentType: rendered.ContentType,
			Data:        rendered.Data,
		}},
	}

	ctx, cancel := h.sendCtx(c.Request.Context())
	defer cancel()
	err = h.Mailer.Send(ctx, msg)
	metrics.ObserveEmail("itinerary", err)
	if err != nil {
		h.mailFailure(c, err, gin.H{"documentCreated": true, "documentType": rendered.Format, "emailSent": false})
		return
	}

	h.log(c).Info("📧 Itinerary emailed",
		zap.String("to", req.Email),
		zap.String("format", rendered.Format),
	)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Itinerary sent to " + req.Email,
		"documentCreated": true,
		"documentType":    rendered.Format,
		"emailSent":       true,
	})
}

// Contact forwards a contact-form message to the admin inbox and sends the
// sender an acknowledgement. Both emails go out concurrently.
func (h *Handler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		badRequest(c, "Name and message are required")
		return
	}
	if !isValidEmail(req.Email) {
		badRequest(c, "A valid email address is required")
		return
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "New contact form message"
	}

	admin := services.Message{
		From:    h.Sender,
		To:      []string{h.AdminEmail},
		ReplyTo: req.Email,
		Subject: "[Contact] " + subject,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
		HTML: fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(req.Name), html.EscapeString(req.Email),
			strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")),
	}
	ack := services.Message{
		From:    h.Sender,
		To:      []string{req.Email},
		Subject: "We received your message",
		Text:    fmt.Sprintf("Hi %s,\n\nThanks for reaching out. We'll get back to you soon.\n\nWayfarer", req.Name),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out. We'll get back to you soon.</p><p>Wayfarer</p>",
			html.EscapeString(req.Name)),
	}

	ctx, cancel := h.sendCtx(c.Request.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := h.Mailer.Send(gctx, admin)
		metrics.ObserveEmail("contact_admin", err)
		return err
	})
	g.Go(func() error {
		err := h.Mailer.Send(gctx, ack)
		metrics.ObserveEmail("contact_ack", err)
		return err
	})
	if err := g.Wait(); err != nil {
		h.mailFailure(c, err, nil)
		return
	}

	h.log(c).Info("📨 Contact message delivered", zap.String("from", req.Email))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks for your message. We'll be in touch soon.",
	})
}
