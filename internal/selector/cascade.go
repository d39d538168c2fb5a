// Package selector locates result elements in parsed HTML using an
// ordered cascade of strategies. The target site's markup is unstable,
// so the cascade trades precision for resilience: a strict structural
// selector first, looser structural alternatives next, and a keyword
// scan over every div as the last resort.
package selector

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Primary is the structural selector for the results block and the
// identifier recorded when it matches.
const Primary = "#block-resultats > div"

// FallbackKeyword identifies the keyword-scan strategy.
const FallbackKeyword = "fallback_keyword_search"

// Alternative structural selectors, tried in order after Primary.
var alternatives = []string{
	".block-resultats div",
	"[id*='resultat'] div",
	".results div",
	".tirage div",
}

// Keywords that mark a div as result-bearing for the fallback scan.
var keywords = []string{"tirage", "resultat", "gagnant", "numero", "fcfa"}

// minKeywordTextLen filters out trivially short divs in the fallback scan.
const minKeywordTextLen = 10

// Strategy is one entry in the cascade: a pure function over the parsed
// document plus the identifier recorded when it wins.
type Strategy struct {
	ID   string
	Find func(doc *goquery.Document) []*goquery.Selection
}

// Result is the outcome of a cascade run. Selector always names exactly
// one strategy, even when no elements were found (the last one tried).
type Result struct {
	Selector string
	Elements []*goquery.Selection
}

// Cascade returns the default strategy order.
func Cascade() []Strategy {
	strategies := []Strategy{cssStrategy(Primary)}
	for _, alt := range alternatives {
		strategies = append(strategies, cssStrategy(alt))
	}
	return append(strategies, keywordStrategy())
}

// Run tries each strategy in order and returns the elements of the
// first one that matched anything, together with its identifier.
func Run(doc *goquery.Document) Result {
	res := Result{Selector: Primary}
	for _, s := range Cascade() {
		res.Selector = s.ID
		if elements := s.Find(doc); len(elements) > 0 {
			res.Elements = elements
			return res
		}
	}
	return res
}

func cssStrategy(sel string) Strategy {
	return Strategy{
		ID: sel,
		Find: func(doc *goquery.Document) []*goquery.Selection {
			var elements []*goquery.Selection
			doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
				elements = append(elements, s)
			})
			return elements
		},
	}
}

func keywordStrategy() Strategy {
	return Strategy{
		ID: FallbackKeyword,
		Find: func(doc *goquery.Document) []*goquery.Selection {
			var elements []*goquery.Selection
			doc.Find("div").Each(func(_ int, s *goquery.Selection) {
				text := strings.ToLower(s.Text())
				if utf8.RuneCountInString(strings.TrimSpace(text)) <= minKeywordTextLen {
					return
				}
				if containsAny(text, keywords) {
					elements = append(elements, s)
				}
			})
			return elements
		},
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
