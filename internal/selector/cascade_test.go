package selector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// parseDoc parses an HTML string into a goquery document.
func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

// readTestdata reads a file from the testdata directory.
func readTestdata(t *testing.T, filename string) string {
	t.Helper()
	path := filepath.Join("testdata", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	return string(data)
}

func TestRun_PrimarySelector(t *testing.T) {
	doc := parseDoc(t, readTestdata(t, "results_page.html"))

	res := Run(doc)

	if res.Selector != Primary {
		t.Errorf("expected selector %q, got %q", Primary, res.Selector)
	}
	if len(res.Elements) != 3 {
		t.Errorf("expected 3 elements, got %d", len(res.Elements))
	}
}

func TestRun_PrimaryWinsOverFallbacks(t *testing.T) {
	// Both the primary container and a .tirage alternative are present;
	// the primary must win and the alternative never be consulted.
	html := `<body>
		<div id="block-resultats"><div>Tirage du 28/08/2026: 12-34-56</div></div>
		<div class="tirage"><div>Resultat alternatif du tirage special</div></div>
	</body>`
	res := Run(parseDoc(t, html))

	if res.Selector != Primary {
		t.Errorf("expected primary selector, got %q", res.Selector)
	}
	if len(res.Elements) != 1 {
		t.Errorf("expected 1 element, got %d", len(res.Elements))
	}
}

func TestRun_AlternativeSelectors(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		selector string
		count    int
	}{
		{
			name:     "block class",
			html:     `<div class="block-resultats"><div>Tirage 12-34-56</div><div>Tirage 11-22-33</div></div>`,
			selector: ".block-resultats div",
			count:    2,
		},
		{
			name:     "id contains resultat",
			html:     `<section id="les-resultats-du-jour"><div>Tirage 12-34-56</div></section>`,
			selector: "[id*='resultat'] div",
			count:    1,
		},
		{
			name:     "results class",
			html:     `<div class="results"><div>Draw 12-34-56</div></div>`,
			selector: ".results div",
			count:    1,
		},
		{
			name:     "tirage class",
			html:     `<div class="tirage"><div>Numeros 12-34-56</div></div>`,
			selector: ".tirage div",
			count:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(parseDoc(t, tt.html))
			if res.Selector != tt.selector {
				t.Errorf("expected selector %q, got %q", tt.selector, res.Selector)
			}
			if len(res.Elements) != tt.count {
				t.Errorf("expected %d elements, got %d", tt.count, len(res.Elements))
			}
		})
	}
}

func TestRun_AlternativeOrder(t *testing.T) {
	// When several alternatives could match, the first in the fixed
	// list wins.
	html := `<body>
		<div class="results"><div>Result entry one here</div></div>
		<div class="block-resultats"><div>Tirage entry</div></div>
	</body>`
	res := Run(parseDoc(t, html))

	if res.Selector != ".block-resultats div" {
		t.Errorf("expected .block-resultats div to win, got %q", res.Selector)
	}
}

func TestRun_KeywordFallback(t *testing.T) {
	html := `<body>
		<div>Le tirage du jour est disponible</div>
		<div>Contenu sans rapport avec les jeux du tout</div>
		<div>gagnant</div>
	</body>`
	res := Run(parseDoc(t, html))

	if res.Selector != FallbackKeyword {
		t.Errorf("expected %q, got %q", FallbackKeyword, res.Selector)
	}
	// Only the first div qualifies: the second has no keyword, the
	// third is under the length threshold.
	if len(res.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(res.Elements))
	}
	if text := res.Elements[0].Text(); !strings.Contains(text, "tirage") {
		t.Errorf("unexpected element text: %q", text)
	}
}

func TestRun_KeywordFallback_LengthBoundary(t *testing.T) {
	// Exactly 10 trimmed characters must be excluded; 11 included.
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"exactly ten chars", "tirage 123", 0},
		{"eleven chars", "tirage 1234", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(parseDoc(t, "<body><div>"+tt.text+"</div></body>"))
			if len(res.Elements) != tt.count {
				t.Errorf("text %q: expected %d elements, got %d", tt.text, tt.count, len(res.Elements))
			}
		})
	}
}

func TestRun_NoElements(t *testing.T) {
	res := Run(parseDoc(t, `<body><p>Rien a voir ici</p></body>`))

	if len(res.Elements) != 0 {
		t.Errorf("expected no elements, got %d", len(res.Elements))
	}
	// The identifier of the last strategy tried is recorded even on a
	// total miss.
	if res.Selector != FallbackKeyword {
		t.Errorf("expected selector %q, got %q", FallbackKeyword, res.Selector)
	}
}

func TestCascade_Order(t *testing.T) {
	strategies := Cascade()

	want := []string{
		Primary,
		".block-resultats div",
		"[id*='resultat'] div",
		".results div",
		".tirage div",
		FallbackKeyword,
	}
	if len(strategies) != len(want) {
		t.Fatalf("expected %d strategies, got %d", len(want), len(strategies))
	}
	for i, id := range want {
		if strategies[i].ID != id {
			t.Errorf("strategy %d: expected %q, got %q", i, id, strategies[i].ID)
		}
	}
}
