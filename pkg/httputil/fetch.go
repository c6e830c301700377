package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

const (
	// MaxBodySize bounds the size of a fetched document.
	MaxBodySize = 32 << 20

	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
)

// Fetcher downloads documents over HTTP.
type Fetcher struct {
	Client   *http.Client
	Attempts int
	Delay    time.Duration
}

// NewFetcher returns a Fetcher with a 30s client timeout and three attempts.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 30 * time.Second},
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
	}
}

// Fetch downloads url with a default Fetcher.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	return NewFetcher().Fetch(ctx, url)
}

// Fetch downloads url. A 404 yields a NOT_FOUND error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := Retry(ctx, f.Attempts, f.Delay, func() error {
		b, err := f.get(ctx, url)
		body = b
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "request %s", url)
	}
	resp, err := f.client().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: fmt.Errorf("get %s: %w", url, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.New(errs.ErrCodeNotFound, "%s: 404 not found", url)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &RetryableError{Err: fmt.Errorf("get %s: %s", url, resp.Status)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("get %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read %s: %w", url, err)}
	}
	if len(body) > MaxBodySize {
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s: document larger than %d bytes", url, MaxBodySize)
	}
	return body, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}
