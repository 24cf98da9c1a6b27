package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/wordladder/pkg/buildinfo"
	"github.com/matzehuels/wordladder/pkg/errors"
)

// Defaults used by [NewFetcher].
const (
	DefaultAttempts = 3
	DefaultDelay    = time.Second
	DefaultTimeout  = 30 * time.Second
	DefaultMaxSize  = 64 << 20
)

// IsURL reports whether s names a remote dictionary.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetcher downloads documents with retries.
type Fetcher struct {
	Client   *http.Client
	Attempts int
	Delay    time.Duration
	MaxSize  int64 // bodies larger than this fail
}

// NewFetcher creates a Fetcher with the package defaults.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: DefaultTimeout},
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		MaxSize:  DefaultMaxSize,
	}
}

// Get returns the body of url.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := Retry(ctx, f.Attempts, f.Delay, func() error {
		b, err := f.get(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid URL %s", url)
	}
	req.Header.Set("User-Agent", "wordladder/"+buildinfo.Version)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	limit := f.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	if int64(len(data)) > limit {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is larger than %d bytes", url, limit)
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeFileNotFound, "%s not found", url)
	case code == http.StatusTooManyRequests || code >= 500:
		return &RetryableError{Err: fmt.Errorf("status %d", code)}
	default:
		return fmt.Errorf("status %d", code)
	}
}
