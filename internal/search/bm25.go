package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// DefaultKeywordLimit is used when Search receives no positive limit.
const DefaultKeywordLimit = 10

// Search runs a BM25 match query over names, tags, aliases and categories.
// A non-empty library restricts hits to that library.
func (k *KeywordIndex) Search(text, library string, limit int) ([]KeywordHit, error) {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}
	if strings.TrimSpace(text) == "" {
		return []KeywordHit{}, nil
	}

	var q query.Query = buildMatchQuery(text)
	if library != "" {
		libraryQuery := bleve.NewTermQuery(library)
		libraryQuery.SetField("library")
		q = bleve.NewConjunctionQuery(q, libraryQuery)
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	results, err := k.bleveIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return k.convertResults(results), nil
}

// convertResults maps bleve hits back onto catalog records.
func (k *KeywordIndex) convertResults(results *bleve.SearchResult) []KeywordHit {
	hits := make([]KeywordHit, 0, len(results.Hits))

	for _, hit := range results.Hits {
		library, name, ok := strings.Cut(hit.ID, "/")
		if !ok {
			continue
		}
		rec, found := firstInLibrary(k.icons.Bucket(name), library)
		if !found {
			continue
		}
		hits = append(hits, KeywordHit{
			Name:     name,
			Library:  library,
			Score:    hit.Score,
			Variants: rec.Variants,
		})
	}

	return hits
}
