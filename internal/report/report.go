// Package report defines the JSON report emitted once per invocation.
// The report is the only contractual output of the process; its field
// names are consumed by external automation and must stay stable.
package report

import (
	"encoding/json"
	"io"
	"time"
)

// DefaultEnvironment tags reports produced by the hosted cron deployment.
const DefaultEnvironment = "render.com"

// ContentType is the coarse classification of an extracted element.
type ContentType string

const (
	ContentResult       ContentType = "result"
	ContentAnnouncement ContentType = "announcement"
	ContentUnknown      ContentType = "unknown"
)

// Item is one extracted result element.
//
// The detector fields are omitted entirely when a detector family found
// nothing, so consumers can test for key presence rather than emptiness.
type Item struct {
	Number              int         `json:"item_number"`
	TextContent         string      `json:"text_content"`
	TextLines           []string    `json:"text_lines"`
	HTMLClasses         []string    `json:"html_classes"`
	ExtractionTimestamp string      `json:"extraction_timestamp"`
	ContentLength       int         `json:"content_length"`
	DetectedNumbers     []string    `json:"detected_numbers,omitempty"`
	DetectedAmounts     []string    `json:"detected_amounts,omitempty"`
	DetectedDates       []string    `json:"detected_dates,omitempty"`
	ContentType         ContentType `json:"content_type"`
}

// Report is the single artifact produced by a scrape run. It is created
// with defaults before any network activity so that every failure path
// still serializes to a well-formed document.
type Report struct {
	ExtractionDate string  `json:"extraction_date"`
	SourceURL      string  `json:"source_url"`
	Selector       string  `json:"selector"`
	Success        bool    `json:"success"`
	Error          *string `json:"error"`
	Items          []Item  `json:"items"`
	RawCount       int     `json:"raw_count"`
	Environment    string  `json:"environment"`
}

// New returns a report initialized with defaults: success=false, no
// error, an empty (non-nil) item list and the given selector recorded
// as the one in use until a cascade stage overrides it.
func New(sourceURL, selector, environment string) *Report {
	if environment == "" {
		environment = DefaultEnvironment
	}
	return &Report{
		ExtractionDate: time.Now().Format(time.RFC3339),
		SourceURL:      sourceURL,
		Selector:       selector,
		Items:          []Item{},
		Environment:    environment,
	}
}

// SetError records a failure message and forces success=false.
func (r *Report) SetError(msg string) {
	r.Success = false
	r.Error = &msg
}

// Encode writes the report as one line of compact JSON. Non-ASCII text
// (French result content) is emitted unescaped.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
