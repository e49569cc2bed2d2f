package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(
//		utils.WithBaseURL("https://exercism.org/api"),
//		utils.WithBearerToken(token),
//	)
//	resp, err := client.R().Get("/v2/solutions")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
// Trailing slashes are dropped.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout bounds each request, including reading a streamed body.
// Non-positive values leave the client without a timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithBearerToken attaches "Authorization: Bearer <token>" to every request.
// An empty token is ignored.
func WithBearerToken(token string) HTTPClientOption {
	return func(c *resty.Client) {
		if token = strings.TrimSpace(token); token != "" {
			c.SetAuthToken(token)
		}
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) {
		if userAgent != "" {
			c.SetHeader("User-Agent", userAgent)
		}
	}
}

// RunIDHeader carries the run identifier of the request context.
const RunIDHeader = "X-Request-Id"

// WithRunIDHeader copies the run identifier stored by [WithRunID] in the
// request context into the [RunIDHeader] header.
func WithRunIDHeader() HTTPClientOption {
	return func(c *resty.Client) {
		c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if runID, ok := GetRunIDFromContext(r.Context()); ok {
				r.SetHeader(RunIDHeader, runID)
			}
			return nil
		})
	}
}

// WithRequestLogging logs every completed exchange at trace level.
func WithRequestLogging(log *logger.Logger) HTTPClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Trace().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Send()
			return nil
		})
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance configured by
// opts. Each call returns an independent client with its own connection
// pool.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
