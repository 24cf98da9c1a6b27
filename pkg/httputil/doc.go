// Package httputil downloads dictionaries over HTTP.
//
// # Overview
//
// A dictionary argument that starts with http:// or https:// is fetched
// instead of opened. [Fetcher] performs the GET and retries transient
// failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// A 404 becomes a FILE_NOT_FOUND error, other failures a NETWORK_ERROR
// (see [github.com/matzehuels/wordladder/pkg/errors]).
//
// # Retry
//
// [Retry] runs any operation with exponential backoff. Only errors wrapped
// in [RetryableError] are retried:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return fetch()
//	})
//
// # Configuration
//
// [NewFetcher] uses 3 attempts, a 1 second initial delay, a 30 second
// request timeout and a 64 MiB body limit.
package httputil
