package uploaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthorized is returned when an API call is made before Authorize.
	ErrNotAuthorized = errors.New("client is not authorized")
	// ErrBucketUnknown is returned when the key is not restricted to a bucket and no bucket name is configured,
	// or the configured bucket does not exist.
	ErrBucketUnknown = errors.New("bucket is unknown")
)

// APIError is a non 2xx response of the B2 API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("status code should be 2xx (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status code should be 2xx (%d): %s: %s", e.Status, e.Code, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(body)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
	}
	apiErr.Status = statusCode

	return apiErr
}

// isRetryableUpload reports whether a failed upload may succeed on a new upload url.
// Transport errors and timeouts count, as do busy pods and expired upload tokens.
func isRetryableUpload(err error) bool {
	if errors.Is(err, ErrNotAuthorized) || errors.Is(err, ErrBucketUnknown) {
		return false
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return true
	}

	switch {
	case apiErr.Status == http.StatusRequestTimeout, apiErr.Status == http.StatusTooManyRequests:
		return true
	case apiErr.Status == http.StatusUnauthorized:
		return apiErr.Code == "expired_auth_token"
	default:
		return apiErr.Status >= http.StatusInternalServerError
	}
}
