// Package source loads everything a generation session consumes from the
// outside: the template and font bytes, the recipient list and the
// workshop metadata.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gogpu/certgen"
)

// maxResourceSize bounds a single fetched template or font.
const maxResourceSize = 32 << 20

// ErrResourceTooLarge is returned when a fetched resource exceeds maxResourceSize.
var ErrResourceTooLarge = errors.New("source: resource too large")

// Loader fetches the raw bytes behind a location.
type Loader interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Fetcher loads http(s) URLs with an HTTP client and everything else from
// the local file system.
type Fetcher struct {
	// Client is used for URL locations. If nil, a client with Timeout is used.
	Client *http.Client

	// Timeout bounds a single URL fetch when Client is nil.
	Timeout time.Duration
}

// Fetch implements Loader.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if isURL(location) {
		return f.fetchURL(ctx, location)
	}

	// #nosec G304 -- resource paths are provided by the operator
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", location, err)
	}
	return data, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: f.Timeout}
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source: get %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", url, err)
	}
	if len(data) > maxResourceSize {
		return nil, fmt.Errorf("%w: %s", ErrResourceTooLarge, url)
	}

	certgen.ComponentLogger("source").Debug("resource fetched", "url", url, "bytes", len(data))
	return data, nil
}
