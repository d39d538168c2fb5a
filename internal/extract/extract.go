// Package extract turns matched HTML elements into report items:
// normalized text lines, pattern detection and content classification.
package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/lonab-tools/lonascrape/internal/report"
)

// MaxItems caps how many candidate elements are processed per run.
const MaxItems = 10

// minContentLength drops elements whose normalized text is too short
// to be a meaningful result.
const minContentLength = 10

var (
	resultKeywords       = []string{"tirage", "resultat", "gagnant"}
	announcementKeywords = []string{"annonce", "info", "prochaine"}
)

// Run processes up to MaxItems elements in document order. Elements
// whose joined text is under minContentLength characters are skipped
// entirely but still consume their ordinal, so item numbers always
// reflect the position in the candidate list.
func Run(elements []*goquery.Selection) []report.Item {
	items := []report.Item{}
	for i, el := range elements {
		if i >= MaxItems {
			break
		}
		if item, ok := itemFromElement(i+1, el); ok {
			items = append(items, item)
		}
	}
	return items
}

func itemFromElement(number int, el *goquery.Selection) (report.Item, bool) {
	raw, lines := textLines(el)
	joined := strings.Join(lines, "\n")
	if utf8.RuneCountInString(joined) < minContentLength {
		return report.Item{}, false
	}

	item := report.Item{
		Number:              number,
		TextContent:         joined,
		TextLines:           lines,
		HTMLClasses:         classes(el),
		ExtractionTimestamp: time.Now().Format(time.RFC3339),
		ContentLength:       utf8.RuneCountInString(raw),
		DetectedNumbers:     DetectNumbers(raw),
		DetectedAmounts:     DetectAmounts(raw),
		DetectedDates:       DetectDates(raw),
		ContentType:         Classify(raw),
	}
	return item, true
}

// Classify tags element text by keyword presence. The result category
// is checked before announcement; first match wins.
func Classify(text string) report.ContentType {
	lower := strings.ToLower(text)
	for _, w := range resultKeywords {
		if strings.Contains(lower, w) {
			return report.ContentResult
		}
	}
	for _, w := range announcementKeywords {
		if strings.Contains(lower, w) {
			return report.ContentAnnouncement
		}
	}
	return report.ContentUnknown
}

// textLines extracts visible text with line breaks at text-node
// boundaries. It returns the raw joined text (detector input) and the
// trimmed non-empty lines.
func textLines(el *goquery.Selection) (string, []string) {
	var chunks []string
	for _, n := range el.Nodes {
		collectText(n, &chunks)
	}
	raw := strings.Join(chunks, "\n")

	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return raw, lines
}

func collectText(n *html.Node, chunks *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*chunks = append(*chunks, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, chunks)
	}
}

func classes(el *goquery.Selection) []string {
	attr, _ := el.Attr("class")
	fields := strings.Fields(attr)
	if fields == nil {
		return []string{}
	}
	return fields
}
