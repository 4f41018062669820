package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// keySetErrors classifies non-2xx answers of the JWKS endpoint.
var keySetErrors = map[int]error{
	http.StatusNotFound:            ErrKeySetNotFound,
	http.StatusGone:                ErrKeySetNotFound,
	http.StatusUnauthorized:        ErrKeySetDenied,
	http.StatusForbidden:           ErrKeySetDenied,
	http.StatusTooManyRequests:     ErrProviderUnavailable,
	http.StatusInternalServerError: ErrProviderUnavailable,
	http.StatusBadGateway:          ErrProviderUnavailable,
	http.StatusServiceUnavailable:  ErrProviderUnavailable,
	http.StatusGatewayTimeout:      ErrProviderUnavailable,
}

// keySetStatusError returns nil for a 2xx response and a classified error
// carrying the status and a trimmed body otherwise.
func keySetStatusError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	sentinel, ok := keySetErrors[status]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}
	return fmt.Errorf("%w: http %d: %s", sentinel, status, body)
}
