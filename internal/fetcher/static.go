package fetcher

import (
	"context"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/lonab-tools/lonascrape/internal/logger"
)

// StaticFetcher performs a plain HTTP GET via Colly. This is the
// default mode; the results page normally renders server-side.
type StaticFetcher struct {
	config Config
}

// NewStatic creates a static fetcher.
func NewStatic(cfg Config) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves the page with browser-like headers and a bounded
// timeout. One attempt, no retries. The robots.txt lookup is disabled
// so the process issues exactly one outbound request.
func (f *StaticFetcher) Fetch(_ context.Context, targetURL string) (Content, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(f.config.Timeout)
	if f.config.MaxBodySize > 0 {
		c.MaxBodySize = f.config.MaxBodySize
	}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range browserHeaders {
			r.Headers.Set(k, v)
		}
	})

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.HTML = string(r.Body)
		logger.Debug("static fetch response received",
			"status", r.StatusCode,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = err
		logger.Debug("static fetch error", "status", result.StatusCode, "error", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, classify(err, result.StatusCode)
	}
	if fetchErr != nil {
		return result, classify(fetchErr, result.StatusCode)
	}

	logger.Debug("static fetch complete", "url", targetURL, "html_size", len(result.HTML))
	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
