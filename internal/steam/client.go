package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"steamgen/internal/shared"
)

const (
	// BaseURL is the fixed host for all Steam Web API interfaces.
	BaseURL = "https://api.steampowered.com"

	// FormatJSON is the response format requested by default.
	FormatJSON = "json"

	// DefaultMinInterval is the minimum spacing between two requests.
	DefaultMinInterval = 200 * time.Millisecond

	// DefaultTimeout is the per-request budget.
	DefaultTimeout = 10 * time.Second

	// DefaultCooldown is how long the client sleeps after an HTTP 429 before giving up on the call.
	DefaultCooldown = 60 * time.Second

	// bodyPreviewLimit caps how much of a failed response body is kept for diagnostics.
	bodyPreviewLimit = 512
)

// emptyJSON is what every failed request resolves to at the client boundary.
var emptyJSON = json.RawMessage(`{}`)

// ErrorKind classifies a failed Steam Web API request.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindRateLimited
	KindServerError
	KindTimeout
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	case KindServerError:
		return "server_error"
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport_error"
	default:
		return ""
	}
}

// RequestError is the tagged failure of a single API call.
//
// Carries enough context (interface, method, status, truncated body) for operator diagnosis.
type RequestError struct {
	Kind      ErrorKind
	Interface string
	Method    string
	Status    int
	Body      string
	Err       error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s/%s: %s", e.Interface, e.Method, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ClientOpts contains optional settings for creating a Client.
type ClientOpts struct {
	BaseURL     string
	HTTPClient  *http.Client
	Logger      *log.Logger
	MinInterval time.Duration
	Cooldown    time.Duration
	Sleep       func(time.Duration) // rate-limit cooldown sleeper, replaceable in tests
}

// Client issues throttled GET requests against the Steam Web API.
//
// Not safe for concurrent use beyond what the shared limiter provides: the design is strictly sequential, one call in flight at a time.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cooldown   time.Duration
	sleep      func(time.Duration)
	logger     *log.Logger
}

// NewClient creates a Steam Web API client for the given key.
func NewClient(apiKey string, opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = DefaultMinInterval
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     apiKey,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Every(opts.MinInterval), 1),
		cooldown:   opts.Cooldown,
		sleep:      opts.Sleep,
		logger:     opts.Logger,
	}
}

// Do issues a single GET request and returns the raw body or a tagged failure.
//
// The API key and response format are injected after the caller's parameters, so callers cannot override them.
func (c *Client) Do(ctx context.Context, iface, method, version string, params url.Values, format string) ([]byte, *RequestError) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RequestError{Kind: KindTransport, Interface: iface, Method: method, Err: err}
	}

	endpoint := fmt.Sprintf("%s/%s/%s/%s/", c.baseURL, iface, method, version)

	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("key", c.apiKey)
	query.Set("format", format)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Interface: iface, Method: method, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := KindTransport
		if isTimeout(err) {
			kind = KindTimeout
		}
		return nil, &RequestError{Kind: kind, Interface: iface, Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Interface: iface, Method: method, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	reqErr := &RequestError{
		Interface: iface,
		Method:    method,
		Status:    resp.StatusCode,
		Body:      truncate(string(body), bodyPreviewLimit),
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		reqErr.Kind = KindBadRequest
		reqErr.Err = fmt.Errorf("params: %s", redactKey(query).Encode())
	case resp.StatusCode == http.StatusUnauthorized:
		reqErr.Kind = KindUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		reqErr.Kind = KindForbidden
	case resp.StatusCode == http.StatusTooManyRequests:
		reqErr.Kind = KindRateLimited
		c.logger.Warn("rate limited, cooling down", "interface", iface, "method", method, "cooldown", c.cooldown)
		c.sleep(c.cooldown)
	case resp.StatusCode >= 500:
		reqErr.Kind = KindServerError
	default:
		reqErr.Kind = KindTransport
	}

	return nil, reqErr
}

// Request issues a GET request and resolves every failure to an empty JSON object.
//
// The failure kind is reported via the logger only; callers treat "no data" and "error" identically.
func (c *Client) Request(ctx context.Context, iface, method, version string, params url.Values) json.RawMessage {
	body, reqErr := c.Do(ctx, iface, method, version, params, FormatJSON)
	if reqErr != nil {
		c.logFailure(reqErr)
		return emptyJSON
	}
	return body
}

// fetch unmarshals a Request body into target; a body that fails to parse is logged and left as the zero value.
func (c *Client) fetch(ctx context.Context, iface, method, version string, params url.Values, target any) {
	body := c.Request(ctx, iface, method, version, params)
	if err := json.Unmarshal(body, target); err != nil {
		c.logger.Warn("failed to decode response",
			"interface", iface,
			"method", method,
			"error", err,
			"body_preview", truncate(string(body), bodyPreviewLimit),
		)
	}
}

func (c *Client) logFailure(reqErr *RequestError) {
	c.logger.Error("steam api request failed",
		"interface", reqErr.Interface,
		"method", reqErr.Method,
		"kind", reqErr.Kind.String(),
		"status", reqErr.Status,
		"error", reqErr.Err,
	)
	if reqErr.Kind == KindBadRequest && reqErr.Body != "" {
		c.logger.Debug("bad request body", "body", reqErr.Body)
	}
}

// isTimeout reports whether a transport error was caused by the request budget elapsing.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// redactKey returns a copy of the query with the API key hidden, for diagnostics.
func redactKey(query url.Values) url.Values {
	redacted := url.Values{}
	for k, vs := range query {
		if k == "key" {
			redacted.Set(k, "[HIDDEN]")
			continue
		}
		for _, v := range vs {
			redacted.Add(k, v)
		}
	}
	return redacted
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
