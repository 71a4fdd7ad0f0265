// Package httputil provides HTTP helpers shared by the registry clients.
//
// # Retry
//
// [Retry] re-runs an operation with exponential backoff, but only for
// errors wrapped with [RetryableError] (network failures and 5xx
// responses). Protocol and decoding errors are returned immediately.
//
// aurorder does not retry by default: the client calls Retry with a single
// attempt unless the user configures retries, so a failing request fails
// the whole resolution.
//
//	err := httputil.Retry(ctx, 1+retries, 500*time.Millisecond, func() error {
//	    return doRequest()
//	})
package httputil
