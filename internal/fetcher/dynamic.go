package fetcher

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/lonab-tools/lonascrape/internal/logger"
)

// DynamicFetcher renders the page in a headless browser before
// handing back the HTML. Useful when the results block is injected
// client-side and the static fetch comes back empty.
type DynamicFetcher struct {
	config    Config
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewDynamic creates a dynamic fetcher with a browser allocator.
func NewDynamic(cfg Config) (*DynamicFetcher, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	logger.Debug("dynamic fetcher allocator created", "user_agent", cfg.UserAgent)

	return &DynamicFetcher{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}, nil
}

// Fetch navigates to the page, waits for the body to be visible and
// returns the rendered HTML.
func (f *DynamicFetcher) Fetch(ctx context.Context, targetURL string) (Content, error) {
	logger.Debug("dynamic fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := fetchContext(ctx, browserCtx, f.config.Timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		logger.Debug("dynamic fetch failed", "url", targetURL, "error", err)
		return result, classify(err, 0)
	}

	result.HTML = html
	// chromedp doesn't expose status codes without extra listeners; a
	// rendered page is treated as a 200.
	result.StatusCode = 200

	logger.Debug("dynamic fetch complete", "url", targetURL, "html_size", len(html))
	return result, nil
}

// fetchContext bounds a browser context by the configured timeout and
// by the caller's cancellation. The browser context has to stay parented
// to the allocator, so the caller's ctx is forwarded instead of being
// used as the parent directly.
func fetchContext(ctx, browserCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithTimeout(browserCtx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

// Close releases browser resources.
func (f *DynamicFetcher) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *DynamicFetcher) Type() string {
	return "dynamic"
}
