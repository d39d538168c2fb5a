package extract

import (
	"regexp"
	"strings"
)

// Detector families for free-form result text. The amount patterns
// overlap on purpose: the site mixes thousand separators and currency
// markers freely, so every family collects everything it can and the
// results are deduplicated afterwards.
var (
	numberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{2}-\d{2}-\d{2}(?:-\d{2})*\b`),
		regexp.MustCompile(`\b\d{2}\s+\d{2}\s+\d{2}(?:\s+\d{2})*\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	}

	// Amounts never span line breaks: only horizontal whitespace is
	// allowed inside and around the numeric portion, so a draw number
	// ending one line cannot bleed into an amount starting the next.
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([\d \t,.]+)[ \t]*(?:FCFA|CFA|F[ \t]*CFA)`),
		regexp.MustCompile(`(?i)(\d{1,3}(?:[,. \t]\d{3})*)[ \t]*(?:FCFA|CFA)`),
		regexp.MustCompile(`(?i)([\d,. \t]+)[ \t]*(?:francs?|F)`),
	}

	datePattern = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// DetectNumbers finds draw-number groups (hyphen, space or slash
// separated two-digit groups, or date-like sequences). Matches are
// deduplicated; order is not significant but kept stable at first
// appearance.
func DetectNumbers(text string) []string {
	var matches []string
	for _, p := range numberPatterns {
		matches = append(matches, p.FindAllString(text, -1)...)
	}
	return dedupe(matches)
}

// DetectAmounts finds monetary amounts followed by a currency marker
// (FCFA, CFA, franc(s) or a bare F). Only the numeric portion is kept,
// trimmed and deduplicated.
func DetectAmounts(text string) []string {
	var matches []string
	for _, p := range amountPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if v := strings.TrimSpace(m[1]); v != "" {
				matches = append(matches, v)
			}
		}
	}
	return dedupe(matches)
}

// DetectDates finds D/M/Y and D-M-Y patterns in order of appearance.
// Unlike the other families, duplicates are kept.
func DetectDates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
