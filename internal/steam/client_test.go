package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestClient(t *testing.T, serverURL string, opts ClientOpts) *Client {
	t.Helper()
	opts.BaseURL = serverURL
	if opts.MinInterval == 0 {
		opts.MinInterval = time.Millisecond
	}
	if opts.Logger == nil {
		logger := log.New(io.Discard)
		logger.SetLevel(log.FatalLevel)
		opts.Logger = logger
	}
	return NewClient("test-key", opts)
}

func TestClient(t *testing.T) {
	t.Run("Key And Format Injection", func(t *testing.T) {
		var captured *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r
			w.Write([]byte(`{"response":{}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{})

		params := url.Values{}
		params.Set("steamid", "76561198000000000")
		params.Set("key", "attacker-key")
		params.Set("format", "xml")

		_, reqErr := client.Do(context.Background(), "ISteamUser", "GetPlayerSummaries", "v0002", params, FormatJSON)
		if reqErr != nil {
			t.Fatalf("expected no error, got %v", reqErr)
		}

		if captured.URL.Path != "/ISteamUser/GetPlayerSummaries/v0002/" {
			t.Errorf("unexpected request path: %s", captured.URL.Path)
		}

		query := captured.URL.Query()
		if got := query.Get("key"); got != "test-key" {
			t.Errorf("expected caller key to be overridden, got %q", got)
		}
		if got := query.Get("format"); got != "json" {
			t.Errorf("expected format json, got %q", got)
		}
		if got := query.Get("steamid"); got != "76561198000000000" {
			t.Errorf("expected steamid to survive, got %q", got)
		}
	})

	t.Run("Status Classification", func(t *testing.T) {
		cases := []struct {
			status int
			kind   ErrorKind
		}{
			{http.StatusBadRequest, KindBadRequest},
			{http.StatusUnauthorized, KindUnauthorized},
			{http.StatusForbidden, KindForbidden},
			{http.StatusTooManyRequests, KindRateLimited},
			{http.StatusInternalServerError, KindServerError},
			{http.StatusBadGateway, KindServerError},
			{http.StatusServiceUnavailable, KindServerError},
		}

		for _, tc := range cases {
			t.Run(tc.kind.String(), func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.status)
				}))
				defer server.Close()

				client := newTestClient(t, server.URL, ClientOpts{Sleep: func(time.Duration) {}})

				_, reqErr := client.Do(context.Background(), "ISteamUser", "GetPlayerSummaries", "v0002", nil, FormatJSON)
				if reqErr == nil {
					t.Fatalf("expected error for status %d", tc.status)
				}
				if reqErr.Kind != tc.kind {
					t.Errorf("expected kind %s, got %s", tc.kind, reqErr.Kind)
				}
				if reqErr.Status != tc.status {
					t.Errorf("expected status %d, got %d", tc.status, reqErr.Status)
				}
			})
		}
	})

	t.Run("Rate Limit Cooldown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		var slept time.Duration
		client := newTestClient(t, server.URL, ClientOpts{
			Cooldown: 30 * time.Second,
			Sleep:    func(d time.Duration) { slept = d },
		})

		_, reqErr := client.Do(context.Background(), "ISteamUserStats", "GetPlayerAchievements", "v0001", nil, FormatJSON)
		if reqErr == nil || reqErr.Kind != KindRateLimited {
			t.Fatalf("expected rate limited error, got %v", reqErr)
		}
		if slept != 30*time.Second {
			t.Errorf("expected 30s cooldown sleep, got %v", slept)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{
			HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
		})

		_, reqErr := client.Do(context.Background(), "ISteamUser", "GetPlayerSummaries", "v0002", nil, FormatJSON)
		if reqErr == nil {
			t.Fatal("expected timeout error")
		}
		if reqErr.Kind != KindTimeout {
			t.Errorf("expected kind timeout, got %s", reqErr.Kind)
		}
	})

	t.Run("Transport Error", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:0", ClientOpts{})

		_, reqErr := client.Do(context.Background(), "ISteamUser", "GetPlayerSummaries", "v0002", nil, FormatJSON)
		if reqErr == nil {
			t.Fatal("expected transport error")
		}
		if reqErr.Kind != KindTransport {
			t.Errorf("expected kind transport_error, got %s", reqErr.Kind)
		}
	})

	t.Run("Throttle Spacing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{MinInterval: 50 * time.Millisecond})

		start := time.Now()
		for i := 0; i < 2; i++ {
			if _, reqErr := client.Do(context.Background(), "ISteamApps", "GetAppList", "v2", nil, FormatJSON); reqErr != nil {
				t.Fatalf("request %d failed: %v", i, reqErr)
			}
		}
		elapsed := time.Since(start)

		if elapsed < 40*time.Millisecond {
			t.Errorf("expected second request to be throttled, both completed in %v", elapsed)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, reqErr := client.Do(ctx, "ISteamUser", "GetPlayerSummaries", "v0002", nil, FormatJSON)
		if reqErr == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestRequest(t *testing.T) {
	t.Run("Failure Resolves To Empty JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{})

		body := client.Request(context.Background(), "ISteamUser", "GetPlayerSummaries", "v0002", nil)
		if string(body) != "{}" {
			t.Errorf("expected empty JSON object, got %s", body)
		}

		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			t.Errorf("fallback body should be valid JSON: %v", err)
		}
	})

	t.Run("Success Returns Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response":{"player_level":42}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, ClientOpts{})

		body := client.Request(context.Background(), "IPlayerService", "GetSteamLevel", "v1", nil)

		var envelope steamLevelEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if envelope.Response.PlayerLevel != 42 {
			t.Errorf("expected level 42, got %d", envelope.Response.PlayerLevel)
		}
	})
}

func TestRequestError(t *testing.T) {
	t.Run("Error Message", func(t *testing.T) {
		reqErr := &RequestError{
			Kind:      KindServerError,
			Interface: "ISteamUser",
			Method:    "GetPlayerSummaries",
			Status:    502,
		}

		msg := reqErr.Error()
		want := "ISteamUser/GetPlayerSummaries: server_error (status 502)"
		if msg != want {
			t.Errorf("expected %q, got %q", want, msg)
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		inner := fmt.Errorf("connection refused")
		reqErr := &RequestError{Kind: KindTransport, Err: inner}

		if !errors.Is(reqErr, inner) {
			t.Error("expected errors.Is to find the wrapped error")
		}
	})
}

func TestRedactKey(t *testing.T) {
	query := url.Values{}
	query.Set("key", "secret")
	query.Set("steamid", "123")

	redacted := redactKey(query)
	if redacted.Get("key") != "[HIDDEN]" {
		t.Errorf("expected key to be hidden, got %q", redacted.Get("key"))
	}
	if redacted.Get("steamid") != "123" {
		t.Errorf("expected steamid to survive, got %q", redacted.Get("steamid"))
	}
	if query.Get("key") != "secret" {
		t.Error("redaction should not mutate the original query")
	}
}
