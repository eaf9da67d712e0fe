package gitlab

import (
	"crypto/tls"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jmgilman/go/errors"
)

const (
	// apiPrefix is the fixed path prefix of the v3 REST API.
	apiPrefix = "/api/v3"

	// defaultTimeout bounds every request issued by a client that was not
	// given its own http.Client.
	defaultTimeout = 30 * time.Second
)

// Client is a GitLab API client bound to a single host. It owns the session
// configuration (base URL, private token, optional sudo identity) and exposes
// one method per remote operation.
//
// The token and sudo identity are the only mutable session state; both are
// guarded so a client may be shared between goroutines.
//
// Example usage:
//
//	client, err := gitlab.NewClient("gitlab.example.com", gitlab.WithToken("glpat-..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	project, err := client.GetProject(ctx, 42)
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
	sudo  string
}

// Option configures a Client during construction.
type Option func(*Client) error

// NewClient creates a client for the GitLab instance at host.
//
// The host may be given with or without a scheme; https is assumed when the
// scheme is omitted, and a trailing slash is stripped. An empty host is a
// construction error.
func NewClient(host string, opts ...Option) (*Client, error) {
	if host == "" {
		err := errors.New(errors.CodeInvalidInput, "host cannot be empty")
		return nil, errors.WithContext(err, "field", "host")
	}

	host = strings.TrimSuffix(host, "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	c := &Client{
		baseURL:    host + apiPrefix,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithToken sets the private token used to authenticate requests.
// Tokens can also be obtained at runtime through Login.
func WithToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		c.token = token
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. This allows full control over
// transport configuration, proxies, and timeouts.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			err := errors.New(errors.CodeInvalidInput, "http client cannot be nil")
			return errors.WithContext(err, "field", "httpClient")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout overrides the default request timeout on the owned HTTP client.
// It has no effect on a client supplied through WithHTTPClient if that option
// is applied afterwards.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			err := errors.New(errors.CodeInvalidInput, "timeout must be positive")
			return errors.WithContext(err, "field", "timeout")
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Intended for
// instances with self-signed certificates; do not use against hosts you do
// not control.
func WithInsecureSkipVerify() Option {
	return func(c *Client) error {
		transport, ok := http.DefaultTransport.(*http.Transport)
		if !ok {
			return errors.New(errors.CodeInternal, "default transport is not an *http.Transport")
		}
		t := transport.Clone()
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
		c.httpClient.Transport = t
		return nil
	}
}

// BaseURL returns the API base URL the client issues requests against,
// including the /api/v3 prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the private token currently attached to requests.
// Returns empty string if no token has been set or obtained via Login.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}
