package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrEnhancementUnavailable wraps every reason the text generator could not
// produce a usable plan. Callers fall back to the template itinerary.
var ErrEnhancementUnavailable = errors.New("ai enhancement unavailable")

// Enhancement is generated itinerary text.
type Enhancement struct {
	Text  string
	Model string
}

// Enhancer turns a prompt into itinerary text.
type Enhancer interface {
	Enhance(ctx context.Context, prompt string) (Enhancement, error)
}

const defaultHFBaseURL = "https://api-inference.huggingface.co/models"

type HuggingFaceConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// RequestsPerSecond caps outbound calls across all requests.
	RequestsPerSecond float64
	BaseURL           string
}

type HuggingFaceClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewHuggingFaceClient(cfg HuggingFaceConfig, logger *zap.Logger) *HuggingFaceClient {
	if cfg.Model == "" {
		cfg.Model = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultHFBaseURL
	}

	if cfg.APIKey != "" {
		logger.Info("✅ AI (HuggingFace) initialized", zap.String("model", cfg.Model))
	} else {
		logger.Warn("⚠️  HUGGINGFACE_API_KEY not set, itineraries will use the template generator")
	}

	return &HuggingFaceClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		logger:     logger,
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// Enhance makes one attempt. It never retries and does not wait for the rate
// limiter: a busy limiter means the template is used instead.
func (c *HuggingFaceClient) Enhance(ctx context.Context, prompt string) (Enhancement, error) {
	if c.apiKey == "" {
		return Enhancement{}, fmt.Errorf("%w: api key not configured", ErrEnhancementUnavailable)
	}
	if !c.limiter.Allow() {
		return Enhancement{}, fmt.Errorf("%w: rate limited", ErrEnhancementUnavailable)
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("AI enhancement failed", zap.Error(err))
		return Enhancement{}, fmt.Errorf("%w: %v", ErrEnhancementUnavailable, err)
	}
	return Enhancement{Text: text, Model: c.model}, nil
}

func (c *HuggingFaceClient) generate(ctx context.Context, prompt string) (string, error) {
	jsonBody, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   1200,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", errors.New("model is loading")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface API error (%d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(hfResp) == 0 {
		return "", errors.New("empty response")
	}

	text := strings.TrimSpace(hfResp[0].GeneratedText)
	if !strings.Contains(text, "Day 1") {
		return "", errors.New("response is not a day-by-day plan")
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// NoopEnhancer is always unavailable.
type NoopEnhancer struct{}

func (NoopEnhancer) Enhance(context.Context, string) (Enhancement, error) {
	return Enhancement{}, fmt.Errorf("%w: disabled", ErrEnhancementUnavailable)
}
