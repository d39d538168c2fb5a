// Package scrape wires the pipeline stages together: fetch, selector
// cascade, element extraction, report assembly. One Runner performs
// one run and produces exactly one report, regardless of outcome.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"

	"github.com/lonab-tools/lonascrape/internal/extract"
	"github.com/lonab-tools/lonascrape/internal/fetcher"
	"github.com/lonab-tools/lonascrape/internal/logger"
	"github.com/lonab-tools/lonascrape/internal/report"
	"github.com/lonab-tools/lonascrape/internal/selector"
)

// DefaultURL is the results page scraped when no override is given.
const DefaultURL = "http://www.lonab.bf"

// ErrNoElements is the well-formed "nothing matched" outcome. It is
// not a crash; the report stays valid and the process exits non-zero.
var ErrNoElements = errors.New("no elements found")

// Config controls a single scrape run.
type Config struct {
	URL         string        `validate:"required,url"`
	Timeout     time.Duration `validate:"required"`
	FetchMode   string        `validate:"oneof=static dynamic"`
	Environment string
	MaxBodySize int `validate:"gte=0"`
}

// DefaultConfig returns the fixed production behavior.
func DefaultConfig() Config {
	return Config{
		URL:         DefaultURL,
		Timeout:     fetcher.DefaultTimeout,
		FetchMode:   "static",
		Environment: report.DefaultEnvironment,
	}
}

// Runner executes the pipeline.
type Runner struct {
	cfg   Config
	fetch fetcher.Fetcher
}

// Option configures a Runner.
type Option func(*Runner)

// WithFetcher overrides the fetcher built from Config.FetchMode.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(r *Runner) {
		r.fetch = f
	}
}

// New validates the configuration and builds a Runner.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}

	if r.fetch == nil {
		fcfg := fetcher.Config{
			Timeout:     cfg.Timeout,
			MaxBodySize: cfg.MaxBodySize,
		}
		switch cfg.FetchMode {
		case "dynamic":
			f, err := fetcher.NewDynamic(fcfg)
			if err != nil {
				return nil, fmt.Errorf("create dynamic fetcher: %w", err)
			}
			r.fetch = f
		default:
			r.fetch = fetcher.NewStatic(fcfg)
		}
	}

	return r, nil
}

// Run executes the four stages in order. Every failure is recovered
// into the report; Run never returns an error and never panics past
// this frame.
func (r *Runner) Run(ctx context.Context) (rep *report.Report) {
	rep = report.New(r.cfg.URL, selector.Primary, r.cfg.Environment)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("pipeline panic recovered", "panic", p)
			rep.SetError(fmt.Sprintf("critical error: %v", p))
		}
	}()

	content, err := r.fetch.Fetch(ctx, r.cfg.URL)
	if err != nil {
		logger.Error("fetch failed", "url", r.cfg.URL, "error", err)
		rep.SetError(errorMessage(err))
		return rep
	}
	logger.Info("html received", "bytes", len(content.HTML))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		rep.SetError(fmt.Sprintf("failed to parse HTML: %v", err))
		return rep
	}

	res := selector.Run(doc)
	rep.Selector = res.Selector
	rep.RawCount = len(res.Elements)
	if len(res.Elements) == 0 {
		logger.Warn("no elements matched any selector strategy")
		rep.SetError(ErrNoElements.Error())
		return rep
	}
	logger.Debug("selector matched", "selector", res.Selector, "raw_count", rep.RawCount)

	rep.Items = extract.Run(res.Elements)
	rep.Success = true
	logger.Info("extraction complete", "selector", rep.Selector, "items", len(rep.Items))
	return rep
}

// Close releases fetcher resources.
func (r *Runner) Close() error {
	if r.fetch != nil {
		return r.fetch.Close()
	}
	return nil
}

// errorMessage maps the fetch error taxonomy to the human-readable
// strings surfaced in the report.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, fetcher.ErrTimeout):
		return "timeout: the results site took too long to respond"
	case errors.Is(err, fetcher.ErrConnection):
		return "connection error: could not reach the results site"
	default:
		return fmt.Sprintf("network error: %v", err)
	}
}
