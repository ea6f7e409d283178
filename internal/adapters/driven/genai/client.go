// Package genai provides adapters for the three remote generative
// endpoints: year analysis, location grounding, and cover image
// generation. All clients share one HTTP transport, credential source,
// and rate limiter.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds every remote call. Analysis requests with a
	// large thinking budget can take well over a minute.
	DefaultTimeout = 120 * time.Second

	// Conservative token-bucket defaults, shared by all three endpoints.
	defaultRequestsPerSecond = 2.0
	defaultBurstSize         = 3
)

// KeySource resolves the API key at call time. The key is deliberately
// not captured at construction: absence is a hard failure at first use,
// not at startup.
type KeySource func() string

// StaticKey returns a KeySource for a fixed key. Useful for tests.
func StaticKey(key string) KeySource {
	return func() string { return key }
}

// Config holds shared configuration for the genai clients.
type Config struct {
	// Key resolves the API key (required).
	Key KeySource

	// BaseURL is the API base URL (default: the public endpoint).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls (default: 2).
	RequestsPerSecond float64

	// BurstSize is the rate limiter burst (default: 3).
	BurstSize int
}

// Client is the shared transport for the genai adapters.
type Client struct {
	http    *http.Client
	baseURL string
	key     KeySource
	limiter *rate.Limiter
}

// NewClient creates the shared genai transport.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = defaultBurstSize
	}
	if cfg.Key == nil {
		cfg.Key = func() string { return "" }
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		key:     cfg.Key,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// generateContentRequest is the :generateContent request format.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	Tools            []tool            `json:"tools,omitempty"`
}

// content is one conversational turn.
type content struct {
	Parts []part `json:"parts"`
}

// part is one piece of a turn: text or inline binary data.
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

// inlineData carries base64-encoded binary content.
type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

// generationConfig tunes the model's output.
type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema         `json:"responseSchema,omitempty"`
	ThinkingConfig   *thinkingConfig `json:"thinkingConfig,omitempty"`
	ImageConfig      *imageConfig    `json:"imageConfig,omitempty"`
}

// thinkingConfig biases the model toward multi-step reasoning.
type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

// imageConfig tunes image generation.
type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

// tool enables a server-side capability.
type tool struct {
	GoogleMaps *struct{} `json:"googleMaps,omitempty"`
}

// schema is a structured-output response schema descriptor.
type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
}

// generateContentResponse is the :generateContent response format.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

// candidate is one generated answer.
type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

// groundingMetadata carries the citations backing a grounded answer.
type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

// groundingChunk is one citation. Only the maps field is consumed.
type groundingChunk struct {
	Maps *mapsChunk `json:"maps,omitempty"`
}

// mapsChunk is a geographic citation.
type mapsChunk struct {
	Title              string              `json:"title,omitempty"`
	URI                string              `json:"uri,omitempty"`
	Rating             float64             `json:"rating,omitempty"`
	PlaceAnswerSources []placeAnswerSource `json:"placeAnswerSources,omitempty"`
}

// placeAnswerSource references the place record behind a citation.
type placeAnswerSource struct {
	PlaceID string `json:"placeId,omitempty"`
}

// apiError is the remote error envelope.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// generateContent issues one :generateContent call for the given model.
func (c *Client) generateContent(
	ctx context.Context,
	model string,
	reqBody generateContentRequest,
) (*generateContentResponse, error) {
	key := c.key()
	if key == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if genResp.Error != nil {
		return nil, fmt.Errorf("genai error: %s", genResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("genai error (status %d): %s", resp.StatusCode, string(body))
	}

	return &genResp, nil
}

// firstText returns the first text part of the first candidate, or "".
func (r *generateContentResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
