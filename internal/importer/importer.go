// Package importer fetches kitty.conf files from GitHub.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxConfigBytes bounds a fetched config.
const maxConfigBytes = 4 << 20

// Errors returned by the importer.
var (
	// ErrUnsupportedURL indicates a URL that is not a GitHub file URL.
	ErrUnsupportedURL = errors.New("only GitHub file URLs are supported")

	// ErrTooLarge indicates a response larger than the size bound.
	ErrTooLarge = errors.New("config file too large")
)

// StatusError reports a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Status)
}

// RawURL converts a github.com blob URL to its raw.githubusercontent.com
// form. Raw URLs are returned unchanged; anything else is
// ErrUnsupportedURL.
func RawURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
	}

	switch u.Host {
	case "raw.githubusercontent.com":
		return u.String(), nil
	case "github.com", "www.github.com":
		parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 4)
		if len(parts) < 4 || parts[0] == "" || parts[1] == "" || parts[2] != "blob" || parts[3] == "" {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
		}
		return "https://raw.githubusercontent.com/" + parts[0] + "/" + parts[1] + "/" + parts[3], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
	}
}

// Client fetches config files.
type Client struct {
	httpClient *http.Client
	userAgent  string
	rewrite    func(string) (string, error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithoutRewrite fetches URLs as given, skipping the GitHub check. Used
// against local test servers.
func WithoutRewrite() Option {
	return func(cl *Client) {
		cl.rewrite = func(s string) (string, error) { return s, nil }
	}
}

// New creates a client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  "kittyconf",
		rewrite:    RawURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the config at rawURL.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := c.rewrite(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxConfigBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", target, err)
	}
	if len(data) > maxConfigBytes {
		return "", ErrTooLarge
	}
	return string(data), nil
}
