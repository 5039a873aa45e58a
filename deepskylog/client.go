package deepskylog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultBaseURL is the DeepskyLog instance queried when none is configured.
	DefaultBaseURL = "https://test.deepskylog.org"

	// DefaultTimeout bounds each request. The client is meant for interactive
	// use; callers wanting a stricter deadline pass a context with one.
	DefaultTimeout = 10 * time.Second
)

// Client retrieves a user's observing equipment from a DeepskyLog server.
//
// Each call is a single synchronous GET: no retries, no pagination, no
// caching. The surrounding application owns any retry or backoff policy.
// A Client is safe for concurrent use; it holds no per-call state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
	clock      clockwork.Clock
}

// NewClient creates an equipment client. Zero values select defaults: empty
// baseURL queries [DefaultBaseURL], zero timeout applies [DefaultTimeout],
// nil logger discards, nil metrics records nothing.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
		clock:      clockwork.NewRealClock(),
	}
}

// Instruments fetches the user's instruments, keyed by the service's item ID.
// A user with no instruments yields an empty map, not an error.
func (c *Client) Instruments(ctx context.Context, username string) (map[int]Instrument, error) {
	return fetchItems[Instrument](ctx, c, "instrument", username)
}

// Eyepieces fetches the user's eyepieces, keyed by item ID.
func (c *Client) Eyepieces(ctx context.Context, username string) (map[int]Eyepiece, error) {
	return fetchItems[Eyepiece](ctx, c, "eyepieces", username)
}

// Lenses fetches the user's lenses, keyed by item ID.
func (c *Client) Lenses(ctx context.Context, username string) (map[int]Lens, error) {
	return fetchItems[Lens](ctx, c, "lenses", username)
}

// Filters fetches the user's filters, keyed by item ID.
func (c *Client) Filters(ctx context.Context, username string) (map[int]Filter, error) {
	return fetchItems[Filter](ctx, c, "filters", username)
}

func fetchItems[T any](ctx context.Context, c *Client, resource, username string) (map[int]T, error) {
	if username == "" {
		return nil, errors.New("username must not be empty")
	}

	start := c.clock.Now()
	body, err := c.get(ctx, resource, username)
	elapsed := c.clock.Since(start)
	if err != nil {
		c.metrics.observe(resource, outcomeFor(err), elapsed)
		c.logger.Warn("deepskylog request failed",
			"resource", resource, "username", username, "error", err)
		return nil, err
	}

	items, err := decodeItems[T](resource, body)
	if err != nil {
		c.metrics.observe(resource, "malformed", elapsed)
		c.logger.Warn("deepskylog response rejected",
			"resource", resource, "username", username, "error", err)
		return nil, err
	}

	c.metrics.observe(resource, "success", elapsed)
	return items, nil
}

// get performs the request and maps HTTP-level failures onto the error
// taxonomy. It returns the body only for a 200 response.
func (c *Client) get(ctx context.Context, resource, username string) ([]byte, error) {
	u := fmt.Sprintf("%s/api/%s/%s", c.baseURL, resource, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthenticationError{Username: username, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &ServerError{Resource: resource, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: err}
	}
	return body, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.As(err, new(*AuthenticationError)):
		return "auth_error"
	case errors.As(err, new(*ServerError)):
		return "server_error"
	case errors.As(err, new(*TransportError)):
		return "transport_error"
	default:
		return "error"
	}
}

// decodeItems converts a response body into an ID-keyed map. The service
// returns either a JSON object keyed by string IDs or, historically, an array
// of records each carrying an "id" field; both shapes are accepted. An empty
// object or array is a valid "no equipment" result.
func decodeItems[T any](resource string, body []byte) (map[int]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &MalformedResponseError{Resource: resource, Reason: "empty body"}
	}

	switch trimmed[0] {
	case '{':
		return decodeObjectItems[T](resource, trimmed)
	case '[':
		return decodeArrayItems[T](resource, trimmed)
	default:
		return nil, &MalformedResponseError{Resource: resource, Reason: "body is not a JSON object"}
	}
}

func decodeObjectItems[T any](resource string, body []byte) (map[int]T, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedResponseError{Resource: resource, Reason: "invalid JSON: " + err.Error()}
	}

	items := make(map[int]T, len(raw))
	for key, val := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, &MalformedResponseError{Resource: resource, Reason: fmt.Sprintf("non-numeric item ID %q", key)}
		}
		item, err := decodeItem[T](resource, val)
		if err != nil {
			return nil, err
		}
		items[id] = item
	}
	return items, nil
}

func decodeArrayItems[T any](resource string, body []byte) (map[int]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedResponseError{Resource: resource, Reason: "invalid JSON: " + err.Error()}
	}

	items := make(map[int]T, len(raw))
	for _, val := range raw {
		var key struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(val, &key); err != nil || key.ID == 0 {
			return nil, &MalformedResponseError{Resource: resource, Reason: "array item without an id field"}
		}
		item, err := decodeItem[T](resource, val)
		if err != nil {
			return nil, err
		}
		items[key.ID] = item
	}
	return items, nil
}

func decodeItem[T any](resource string, raw json.RawMessage) (T, error) {
	var item T

	// Shape check first: every item must itself be an object. The raw map
	// doubles as the opaque attribute pass-through.
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return item, &MalformedResponseError{Resource: resource, Reason: "item is not a JSON object"}
	}

	if err := json.Unmarshal(raw, &item); err != nil {
		return item, &MalformedResponseError{Resource: resource, Reason: "item decode failed: " + err.Error()}
	}
	if s, ok := any(&item).(attrSetter); ok {
		s.setAttributes(attrs)
	}
	return item, nil
}
