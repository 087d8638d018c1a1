// Package snippet provides an HTTP client for the snippet hosting service
// used to share presets, plus the local registry of uploaded snippets.
package snippet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public snippet service base URL.
const DefaultBaseURL = "https://snip.nodekit.dev"

// ClientOptions configures a new Client.
type ClientOptions struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	Verbose   bool
	UserAgent string
}

// Client wraps an HTTP client for snippet service calls.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
}

// NewClient builds a Client with retry transport and optional verbose logging.
func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = "presetctl/dev"
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var transport http.RoundTripper = &retryTransport{
		base:       http.DefaultTransport,
		maxRetries: 3,
		baseDelay:  1 * time.Second,
	}

	if opts.Verbose {
		transport = &loggingTransport{base: transport}
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		baseURL:   baseURL,
		token:     opts.Token,
		userAgent: ua,
	}
}

// do executes an HTTP request with standard headers.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

// Upload publishes a snippet and returns its public URL.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling upload request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/snippets", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("posting snippet: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return "", err
	}

	var out Snippet
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}

	return out.URL, nil
}

// Fetch downloads a snippet by identifier or full URL and returns its content
// parsed as a JSON document.
func (c *Client) Fetch(ctx context.Context, idOrURL string) (json.RawMessage, error) {
	id := ExtractID(idOrURL)
	if id == "" {
		return nil, fmt.Errorf("invalid snippet identifier %q", idOrURL)
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/snippets/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting snippet %q: %w", id, err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var out Snippet
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding snippet %q: %w", id, err)
	}

	var doc json.RawMessage
	if err := json.Unmarshal([]byte(out.Content), &doc); err != nil {
		return nil, fmt.Errorf("snippet %q content is not valid JSON: %w", id, err)
	}

	return doc, nil
}

// ExtractID normalizes a snippet identifier: a bare ID is returned as-is,
// a full snippet URL is reduced to its last path segment.
func ExtractID(idOrURL string) string {
	s := strings.TrimSpace(idOrURL)
	if s == "" {
		return ""
	}

	if !strings.Contains(s, "/") {
		return s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")

	return segs[len(segs)-1]
}

// Canonical re-encodes a JSON document with sorted keys and two-space
// indentation, the storage form used for imported snippets. Numbers pass
// through verbatim; node IDs and parameters may hold integers wider than a
// float64 mantissa.
func Canonical(doc []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing snippet content: %w", err)
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("re-encoding snippet content: %w", err)
	}

	return append(out, '\n'), nil
}

type clientCtxKey struct{}

// WithClient stores a Client in the context.
func WithClient(ctx context.Context, cl *Client) context.Context {
	return context.WithValue(ctx, clientCtxKey{}, cl)
}

// ClientFromContext retrieves the Client from the context.
func ClientFromContext(ctx context.Context) *Client {
	if v := ctx.Value(clientCtxKey{}); v != nil {
		if cl, ok := v.(*Client); ok {
			return cl
		}
	}

	return nil
}
