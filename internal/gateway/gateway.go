// Package gateway is the boundary layer between the dashboard and the
// external order-management webhook service. Each operation is routed by
// name to an upstream URL and a mode; swapping a mocked placeholder for a
// live call is a configuration change, not a code change.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
)

// Operation names an outbound webhook call.
type Operation string

const (
	OpCreateUser          Operation = "create_user"
	OpCreateRestaurant    Operation = "create_restaurant"
	OpModifierPriceUpdate Operation = "modifier_price_update"
	OpRestaurantMenu      Operation = "restaurant_menu"
	OpModifierListing     Operation = "modifier_listing"
)

// Mode selects between a real upstream call and a fabricated response.
type Mode string

const (
	// ModeLive forwards the payload to the upstream URL.
	ModeLive Mode = "live"
	// ModeMock skips the upstream entirely and fabricates a success
	// envelope after a fixed delay. Placeholder for integrations that
	// are not wired yet.
	ModeMock Mode = "mock"
)

// Route maps one operation to its upstream.
type Route struct {
	URL  string
	Mode Mode
}

// Caller is the outbound contract the services depend on.
type Caller interface {
	// Call forwards a JSON payload for the named operation and returns
	// the upstream (or fabricated) JSON body verbatim.
	Call(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error)
}

// Config captures the gateway behaviour.
type Config struct {
	Routes    map[Operation]Route
	Timeout   time.Duration // per-call timeout, default 10s
	MockDelay time.Duration // fabricated-response delay, default 500ms
	Client    *http.Client  // optional, for tests
	Logger    *slog.Logger  // optional
}

// Client delivers webhook calls per the configured route table.
type Client struct {
	routes    map[Operation]Route
	mockDelay time.Duration
	client    *http.Client
	logger    *slog.Logger
}

// NewClient builds a webhook gateway client. Callers should pass a
// validated config; every operation the services use must have a route.
func NewClient(cfg Config) (*Client, error) {
	if len(cfg.Routes) == 0 {
		return nil, errors.New("gateway: at least one route is required")
	}
	for op, route := range cfg.Routes {
		if route.Mode != ModeLive && route.Mode != ModeMock {
			return nil, fmt.Errorf("gateway: route %s has invalid mode %q", op, route.Mode)
		}
		if route.Mode == ModeLive && strings.TrimSpace(route.URL) == "" {
			return nil, fmt.Errorf("gateway: live route %s requires a URL", op)
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	mockDelay := cfg.MockDelay
	if mockDelay < 0 {
		mockDelay = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	var logger *slog.Logger
	if cfg.Logger != nil {
		logger = cfg.Logger.With("component", "webhook_gateway")
	}

	return &Client{
		routes:    cfg.Routes,
		mockDelay: mockDelay,
		client:    hc,
		logger:    logger,
	}, nil
}

// Call implements Caller.
func (c *Client) Call(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error) {
	route, ok := c.routes[op]
	if !ok {
		return nil, apperrors.Internal(fmt.Sprintf("no route configured for operation %s", op))
	}

	if route.Mode == ModeMock {
		return c.mock(ctx, op, payload)
	}
	return c.post(ctx, op, route.URL, payload)
}

// mock fabricates the success envelope the upstream would return, after
// the configured fixed delay. No network call is made.
func (c *Client) mock(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error) {
	if c.mockDelay > 0 {
		timer := time.NewTimer(c.mockDelay)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "mocked webhook call", "operation", string(op))
	}

	switch op {
	case OpCreateUser:
		return mustMarshal(map[string]any{
			"success": true,
			"message": "User created successfully",
			"user_id": uuid.NewString(),
		}), nil
	case OpCreateRestaurant:
		return mustMarshal(map[string]any{
			"success":       true,
			"message":       "Restaurant created successfully",
			"restaurant_id": extractID(payload),
		}), nil
	default:
		return mustMarshal(map[string]any{"success": true}), nil
	}
}

func (c *Client) post(ctx context.Context, op Operation, url string, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "create %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "%s request failed", op)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && c.logger != nil {
			c.logger.ErrorContext(ctx, "close webhook response body", "operation", string(op), "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "read %s response", op)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Upstream(fmt.Sprintf("%s webhook returned %s: %s",
			op, resp.Status, strings.TrimSpace(string(body))))
	}

	return body, nil
}

// extractID pulls the caller-supplied id out of an arbitrary JSON body so
// the fabricated create_restaurant envelope can echo it.
func extractID(payload json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	return probe.ID
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		// Only reachable with unmarshalable values, which the fixed
		// envelopes above never contain.
		panic(err)
	}
	return b
}
