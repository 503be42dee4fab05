package eolfetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"go.uber.org/zap"
)

// Client fetches end-of-life data from the endoflife.date API and writes the
// results to disk.
type Client struct {
	sink       io.Writer
	baseURL    *url.URL
	httpClient *http.Client
	log        *zap.SugaredLogger
	userAgent  string
}

// Option represents a functional option for configuring a Client.
type Option func(*Client)

// Default values.
const (
	DefaultTimeout = 15 * time.Second
	UserAgent      = "eolfetch/1.0"
	DefaultBaseURL = "https://endoflife.date/api/v1"
)

// New creates a new batch fetch client with default settings.
func New(opts ...Option) (c *Client, err error) {
	c = &Client{userAgent: UserAgent}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == nil {
		c.baseURL, err = url.Parse(DefaultBaseURL)
		if err != nil {
			return
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}

	if c.sink == nil {
		c.sink = os.Stdout
	}

	return
}

// WithBaseURL returns an Option that sets the base URL for API requests.
func WithBaseURL(baseURL *url.URL) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient returns an Option that sets the HTTP client for making requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout returns an Option that sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}

		c.httpClient.Timeout = timeout
	}
}

// WithLogger returns an Option that sets the structured logger for the client.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSink returns an Option that sets the output writer for status lines.
func WithSink(sink io.Writer) Option {
	return func(c *Client) {
		c.sink = sink
	}
}

// WithUserAgent returns an Option that sets the User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// buildURL constructs a URL for the given endpoint path.
func (c *Client) buildURL(endpoint string) string {
	u := *c.baseURL
	u.Path = path.Join(u.Path, endpoint)

	return u.String()
}

// printf writes a formatted status line to the client sink.
func (c *Client) printf(format string, a ...any) {
	fmt.Fprintf(c.sink, format, a...)
}
