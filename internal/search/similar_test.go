package search

import (
	"math"
	"reflect"
	"testing"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

const epsilon = 1e-9

func singleUserIndex() *Index {
	return Build(catalog.Manifest{
		Name: catalog.Heroicons,
		Icons: []catalog.IconRecord{
			{Name: "user", Library: catalog.Heroicons, Variants: []string{"outline", "solid"}, Tags: []string{"person"}},
		},
	})
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"user", "user", 0},
		{"usr", "user", 1},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := EditDistance(tt.b, tt.a); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestEditDistanceTriangleInequality(t *testing.T) {
	words := []string{"user", "users", "usr", "arrow-up", "arrow-down", "x-mark", "house", ""}

	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				if EditDistance(a, c) > EditDistance(a, b)+EditDistance(b, c) {
					t.Errorf("triangle inequality violated for %q, %q, %q", a, b, c)
				}
			}
		}
	}
}

func TestNormalizedEditDistance(t *testing.T) {
	if got := NormalizedEditDistance("", ""); got != 0 {
		t.Errorf("expected 0 for empty strings, got %v", got)
	}
	if got := NormalizedEditDistance("usr", "user"); math.Abs(got-0.25) > epsilon {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := NormalizedEditDistance("abc", "xyz"); math.Abs(got-1) > epsilon {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		tags      []string
		want      float64
	}{
		{name: "self match", query: "user", candidate: "user", want: 0.8},
		{name: "self match with tag", query: "user", candidate: "user", tags: []string{"user"}, want: 1.0},
		{name: "edit only", query: "usr", candidate: "user", tags: []string{"person"}, want: 0.225},
		{name: "prefix containment", query: "use", candidate: "user", want: 0.5 + 0.75*0.3},
		{name: "query contains candidate", query: "users", candidate: "user", want: 0.5 + 0.8*0.3},
		{name: "tag contains query", query: "pers", candidate: "user", tags: []string{"person"}, want: 0.2 + 0.25*0.3},
		{name: "query contains tag", query: "persons", candidate: "user", tags: []string{"person"}, want: 0.2 + (1-6.0/7.0)*0.3},
		{name: "case sensitive", query: "USER", candidate: "user", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.query, tt.candidate, tt.tags)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFindSimilarBelowThreshold(t *testing.T) {
	idx := singleUserIndex()

	if got := idx.FindSimilar("usr", 5); len(got) != 0 {
		t.Errorf("expected no suggestions for 'usr', got %v", got)
	}
}

func TestFindSimilarContainment(t *testing.T) {
	idx := singleUserIndex()

	got := idx.FindSimilar("use", 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion for 'use', got %v", got)
	}
	if got[0].Name != "user" || got[0].Library != catalog.Heroicons {
		t.Errorf("unexpected suggestion %+v", got[0])
	}
	if math.Abs(got[0].Score-0.725) > epsilon {
		t.Errorf("expected score 0.725, got %v", got[0].Score)
	}
	if !reflect.DeepEqual(got[0].Variants, []string{"outline", "solid"}) {
		t.Errorf("unexpected variants %v", got[0].Variants)
	}
}

func TestFindSimilarEmptyQuery(t *testing.T) {
	idx := testIndex()

	got := idx.FindSimilar("", 5)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result for empty query, got %v", got)
	}
}

func TestFindSimilarSelfMatch(t *testing.T) {
	idx := testIndex()

	for _, name := range idx.Names() {
		got := idx.FindSimilar(name, 1)
		if len(got) != 1 || got[0].Name != name {
			t.Errorf("FindSimilar(%q, 1) = %v, want self first", name, got)
		}
	}
}

func TestFindSimilarLimit(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 1, want: 1},
		{limit: 2, want: 2},
		{limit: 0, want: 2},
		{limit: -3, want: 2},
		{limit: 100, want: 2},
	}

	for _, tt := range tests {
		if got := idx.FindSimilar("user", tt.limit); len(got) != tt.want {
			t.Errorf("FindSimilar(user, %d) returned %d results, want %d", tt.limit, len(got), tt.want)
		}
	}
}

func TestFindSimilarPrefixConsistent(t *testing.T) {
	var icons []catalog.IconRecord
	for _, name := range []string{"arrow-up", "arrow-down", "arrow-left", "arrow-right", "arrows", "arrow-path", "bars", "arrow"} {
		icons = append(icons, catalog.IconRecord{Name: name, Library: catalog.Heroicons, Variants: []string{"outline"}})
	}
	idx := Build(catalog.Manifest{Name: catalog.Heroicons, Icons: icons})

	full := idx.FindSimilar("arrow", 100)
	if len(full) < 3 {
		t.Fatalf("expected several suggestions, got %v", full)
	}

	for n := 1; n <= len(full); n++ {
		prefix := idx.FindSimilar("arrow", n)
		if !reflect.DeepEqual(prefix, full[:n]) {
			t.Errorf("limit %d is not a prefix of the full ranking:\n%v\n%v", n, prefix, full[:n])
		}
	}
}

func TestFindSimilarStableTies(t *testing.T) {
	// arrow-up and arrow-xy score identically; enumeration order must hold.
	idx := Build(catalog.Manifest{
		Name: catalog.Heroicons,
		Icons: []catalog.IconRecord{
			{Name: "arrow-xy", Library: catalog.Heroicons, Variants: []string{"outline"}},
			{Name: "bell", Library: catalog.Heroicons, Variants: []string{"outline"}},
			{Name: "arrow-up", Library: catalog.Heroicons, Variants: []string{"outline"}},
		},
	})

	got := idx.FindSimilar("arrow", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", got)
	}
	if got[0].Name != "arrow-xy" || got[1].Name != "arrow-up" {
		t.Errorf("ties not kept in enumeration order: %v", got)
	}
}

func TestFindSimilarAcrossLibraries(t *testing.T) {
	idx := testIndex()

	got := idx.FindSimilar("user", 5)
	if len(got) != 2 {
		t.Fatalf("expected one suggestion per library, got %v", got)
	}
	// phosphor "user" has no "user" tag either; both score 0.8 and keep load order.
	if got[0].Library != catalog.Heroicons || got[1].Library != catalog.Phosphor {
		t.Errorf("unexpected order %v", got)
	}
}

func TestFindSimilarDescending(t *testing.T) {
	idx := testIndex()

	got := idx.FindSimilar("arrow", 10)
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("results not sorted: %v", got)
		}
	}
	for _, s := range got {
		if s.Score <= SimilarityThreshold {
			t.Errorf("suggestion %v at or below threshold", s)
		}
	}
}
