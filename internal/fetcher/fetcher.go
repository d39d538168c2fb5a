// Package fetcher handles the single page download. It classifies
// failures into the taxonomy the report surfaces (timeout, connection,
// generic network error) and performs exactly one request per run —
// retry cadence belongs to the external orchestrator.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Error taxonomy for fetch failures. Check with errors.Is.
var (
	// ErrTimeout indicates the site did not respond within the timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrConnection indicates a connection could not be established.
	ErrConnection = errors.New("connection failed")
	// ErrNetwork covers every other network-level failure, including
	// non-2xx responses.
	ErrNetwork = errors.New("network error")
)

// DefaultTimeout bounds the only blocking operation in the pipeline.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent mimics a common desktop browser; the site blocks
// obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// browserHeaders is the static header set sent with every request.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "fr-FR,fr;q=0.9,en;q=0.8",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int // bytes, 0 = fetcher default
}

// Content represents a fetched page.
type Content struct {
	URL        string
	HTML       string
	StatusCode int
	FetchedAt  time.Time
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "dynamic".
	Type() string
}

// classify wraps a raw transport error into the taxonomy.
func classify(err error, statusCode int) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if statusCode != 0 && (statusCode < 200 || statusCode >= 300) {
		return fmt.Errorf("%w: unexpected status %d", ErrNetwork, statusCode)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
