package adapter

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an unparsed error body is read.
const maxErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapStreamError maps the status of a response whose body was not parsed by
// resty. It consumes and closes the body when the status is an error.
func mapStreamError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	var body []byte
	if raw := resp.RawBody(); raw != nil {
		body, _ = io.ReadAll(io.LimitReader(raw, maxErrorBody))
		_ = raw.Close()
	}
	return mapStatus(resp.StatusCode(), string(body))
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func mapStatus(code int, body string) error {
	if isSuccess(code) {
		return nil
	}

	body = strings.TrimSpace(body)

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
