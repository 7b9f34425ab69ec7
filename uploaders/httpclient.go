package uploaders

import (
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// NewRetryableClient returns the HTTP client used for every B2 call.
// A retryMax of 0 sends each request exactly once; a timeout of 0 disables the client timeout.
func NewRetryableClient(logger log.Logger, retryMax int, timeout time.Duration) *retryablehttp.Client {
	client := retryhttp.NewClient(logger)
	client.RetryMax = retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = timeout

	return client
}
