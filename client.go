package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadready/sdk-go/headers"
)

const defaultBaseURL = "https://api.roadready.app/api/v1"
const defaultUserAgent = "roadready-sdk-go/" + Version

// Config wires the base URL, transport, storage, and telemetry for the
// API client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Storage persists the auth/refresh tokens across restarts. Defaults to
	// an in-memory store, which loses the session on process exit.
	Storage Storage
	// IntentStorage holds the short-lived subscription intent slot. Kept
	// separate from Storage because the intent must not outlive the
	// interrupted checkout flow. Defaults to an in-memory store.
	IntentStorage Storage
	Telemetry     TelemetryHooks
	UserAgent     string
}

// Client provides high-level helpers for interacting with the RoadReady API.
// It is stateless apart from the injected stores and safe to share as a
// single instance for the process lifetime.
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       authChain
	telemetry  TelemetryHooks
	userAgent  string
	session    *SessionStore

	// Grouped service clients.
	Auth          *AuthClient
	Subscriptions *SubscriptionsClient
	Centers       *CentersClient
	Notifications *NotificationsClient
}

// Option mutates a Config before construction.
type Option func(*Config)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(baseURL string) Option {
	return func(cfg *Config) { cfg.BaseURL = baseURL }
}

// WithHTTPClient supplies a custom *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *Config) { cfg.HTTPClient = httpClient }
}

// WithStorage supplies the durable token storage.
func WithStorage(storage Storage) Option {
	return func(cfg *Config) { cfg.Storage = storage }
}

// WithIntentStorage supplies the short-lived intent storage.
func WithIntentStorage(storage Storage) Option {
	return func(cfg *Config) { cfg.IntentStorage = storage }
}

// WithTelemetry attaches observability hooks.
func WithTelemetry(hooks TelemetryHooks) Option {
	return func(cfg *Config) { cfg.Telemetry = hooks }
}

// New builds a Client from options applied over the defaults.
func New(opts ...Option) (*Client, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	storage := cfg.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}
	intentStorage := cfg.IntentStorage
	if intentStorage == nil {
		intentStorage = NewMemoryStorage()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	session := NewSessionStore(storage)
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		auth:       authChain{sessionAuth{session: session}},
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
		session:    session,
	}
	client.Auth = &AuthClient{client: client, session: session}
	client.Subscriptions = &SubscriptionsClient{
		client:  client,
		session: session,
		intents: intentStore{storage: intentStorage},
	}
	client.Centers = &CentersClient{client: client}
	client.Notifications = &NotificationsClient{client: client}
	return client, nil
}

// Session exposes the token store. AuthClient is its only writer; other
// components read presence only.
func (c *Client) Session() *SessionStore {
	return c.session
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("sdk: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("sdk: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("sdk: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("sdk: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// newFormRequest encodes the payload as application/x-www-form-urlencoded.
// The sign-in endpoint is form-based; the encoding is chosen per operation
// rather than inferred from the payload.
func (c *Client) newFormRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	req, err := c.newRequest(ctx, method, path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// newRawRequest passes an opaque body through unmodified. contentType may
// be empty (a multipart encoder sets its own boundary header on the
// returned request instead).
func (c *Client) newRawRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	target, err := c.buildURL(path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	c.auth.Apply(req)
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// sendAndDecode issues a JSON request and decodes the response into out.
// A response whose content type is not structured data is left undecoded;
// callers expecting a typed shape own that expectation.
func (c *Client) sendAndDecode(ctx context.Context, method, path string, payload any, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	return c.decodeResponse(req, out)
}

func (c *Client) decodeResponse(req *http.Request, out any) error {
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		return nil
	}
	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		if text, ok := out.(*string); ok {
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			*text = string(data)
		}
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) buildURL(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", UsageError{Reason: "endpoint path required"}
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path, nil
}
