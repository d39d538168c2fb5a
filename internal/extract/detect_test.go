package extract

import (
	"reflect"
	"strings"
	"testing"
)

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func TestDetectNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "hyphen separated",
			text: "Tirage: 12-34-56-78",
			want: []string{"12-34-56-78"},
		},
		{
			name: "space separated",
			text: "Numeros 05 12 23 41 gagnants",
			want: []string{"05 12 23 41"},
		},
		{
			name: "date-like sequence",
			text: "le 5/6/2024 au soir",
			want: []string{"5/6/2024"},
		},
		{
			name: "no numbers",
			text: "rien a signaler",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectNumbers(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectNumbers(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectNumbers_Deduplicates(t *testing.T) {
	got := DetectNumbers("12-34-56 et encore 12-34-56")
	if len(got) != 1 || got[0] != "12-34-56" {
		t.Errorf("expected deduplicated [12-34-56], got %v", got)
	}
}

func TestDetectAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"fcfa marker", "Rapport: 5000 FCFA", "5000"},
		{"cfa marker", "Gain de 2500 CFA net", "2500"},
		{"francs marker", "un lot de 1000 francs", "1000"},
		{"thousand separator", "jackpot 1 250 000 FCFA", "1 250 000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAmounts(tt.text)
			if !contains(got, tt.want) {
				t.Errorf("DetectAmounts(%q) = %v, want it to contain %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectAmounts_DoesNotSpanLines(t *testing.T) {
	// A draw number ending one line must not bleed into an amount on
	// the next line.
	got := DetectAmounts("Tirage National\n12-34-56-78\n5000 FCFA")

	if !contains(got, "5000") {
		t.Errorf("expected amounts to contain %q, got %v", "5000", got)
	}
	for _, v := range got {
		if strings.Contains(v, "\n") {
			t.Errorf("amount %q spans a line break", v)
		}
	}
}

func TestDetectAmounts_NoMarker(t *testing.T) {
	if got := DetectAmounts("les numeros 12 34 56"); got != nil {
		t.Errorf("expected no amounts, got %v", got)
	}
}

func TestDetectAmounts_NoDuplicates(t *testing.T) {
	got := DetectAmounts("5000 FCFA puis 5000 FCFA encore")
	seen := make(map[string]int)
	for _, v := range got {
		seen[v]++
		if seen[v] > 1 {
			t.Errorf("duplicate amount %q in %v", v, got)
		}
	}
}

func TestDetectDates(t *testing.T) {
	got := DetectDates("tirages du 12/05/2024, du 13-06-2024 et encore du 12/05/2024")

	want := []string{"12/05/2024", "13-06-2024", "12/05/2024"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectDates = %v, want %v (order kept, duplicates kept)", got, want)
	}
}

func TestDetectDates_None(t *testing.T) {
	if got := DetectDates("aucune date ici"); got != nil {
		t.Errorf("expected no dates, got %v", got)
	}
}
