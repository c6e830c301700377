// Package httputil fetches remote edge list documents.
//
// # Overview
//
//   - [Fetch]: GET a URL and return the body, retrying transient failures
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retry
//
// [Retry] runs an operation until it succeeds, fails permanently, or runs
// out of attempts:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// Only errors wrapped in [RetryableError] are retried. [Fetch] treats
// transport errors, 429 and 5xx responses as retryable; any other non-2xx
// status fails at once.
package httputil
