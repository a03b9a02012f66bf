// Package apiclient is a typed HTTP client for the planner API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"itinera/internal/model"
)

const (
	healthPath        = "/health/detailed"
	itineraryPath     = "/travel/itinerary"
	optionsPath       = "/travel/options"
	foodPath          = "/travel/food"
	plannerItinerary  = "/api/v1/itinera/planner/itinerary"
	defaultBaseURL    = "http://localhost:8000"
	defaultRoutePause = 500 * time.Millisecond
)

// Config tunes the underlying transport.
type Config struct {
	// Timeout bounds each request end to end. A context deadline can still shorten it.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
	MaxIdleConns    int
}

func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		DialTimeout:     5 * time.Second,
		KeepAlive:       30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		MaxIdleConns:    20,
	}
}

// NewHTTPClient builds a traced *http.Client from cfg.
func NewHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout, KeepAlive: cfg.KeepAlive}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: otelhttp.NewTransport(&http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          cfg.MaxIdleConns,
			IdleConnTimeout:       cfg.IdleConnTimeout,
			ResponseHeaderTimeout: cfg.ResponseHeader,
		}),
	}
}

// APIError is a non-2xx response. Code and Message come from the server's error body when present.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Client calls the planner API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	pause   time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRoutePause sets the delay between successive travel option lookups in ExecuteTravelPlan.
func WithRoutePause(d time.Duration) Option {
	return func(c *Client) { c.pause = d }
}

// New returns a client for baseURL, http://localhost:8000 when empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    NewHTTPClient(DefaultConfig()),
		log:     zap.NewNop(),
		pause:   defaultRoutePause,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health returns the detailed health document.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, healthPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Itinerary generates an itinerary through the short /travel path.
func (c *Client) Itinerary(ctx context.Context, req model.ItineraryRequest) (*model.ItineraryResponse, error) {
	return c.itinerary(ctx, itineraryPath, req)
}

// PlannerItinerary generates an itinerary through the versioned planner route.
func (c *Client) PlannerItinerary(ctx context.Context, req model.ItineraryRequest) (*model.ItineraryResponse, error) {
	return c.itinerary(ctx, plannerItinerary, req)
}

func (c *Client) itinerary(ctx context.Context, path string, req model.ItineraryRequest) (*model.ItineraryResponse, error) {
	var out model.ItineraryResponse
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TravelOptions(ctx context.Context, req model.TravelOptionsRequest) (*model.TravelOptionsResponse, error) {
	var out model.TravelOptionsResponse
	if err := c.do(ctx, http.MethodPost, optionsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FoodOptions(ctx context.Context, req model.FoodOptionsRequest) (*model.FoodOptionsResponse, error) {
	var out model.FoodOptionsResponse
	if err := c.do(ctx, http.MethodPost, foodPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var env struct {
		RequestID string `json:"request_id"`
		Error     struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &env) == nil && env.Error.Code != "" {
		return &APIError{Status: status, Code: env.Error.Code, Message: env.Error.Message, RequestID: env.RequestID}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
