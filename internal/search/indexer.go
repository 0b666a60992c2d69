package search

import (
	"fmt"
	"log"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// KeywordIndex is an in-memory bleve index over the icon catalog.
// It is populated once and only searched afterwards.
type KeywordIndex struct {
	bleveIndex bleve.Index
	icons      *Index
}

// NewKeywordIndex indexes every record of idx.
func NewKeywordIndex(idx *Index) (*KeywordIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	k := &KeywordIndex{bleveIndex: index, icons: idx}
	if err := k.indexAll(); err != nil {
		index.Close()
		return nil, err
	}
	return k, nil
}

// buildIndexMapping creates the bleve mapping for icon documents.
func buildIndexMapping() mapping.IndexMapping {
	iconMapping := bleve.NewDocumentMapping()

	iconMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	iconMapping.AddFieldMappingsAt("tags", bleve.NewTextFieldMapping())
	iconMapping.AddFieldMappingsAt("aliases", bleve.NewTextFieldMapping())
	iconMapping.AddFieldMappingsAt("category", bleve.NewTextFieldMapping())

	// Library ids are matched exactly for filtering.
	libraryMapping := bleve.NewTextFieldMapping()
	libraryMapping.Analyzer = keyword.Name
	libraryMapping.IncludeInAll = false
	iconMapping.AddFieldMappingsAt("library", libraryMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", iconMapping)

	return indexMapping
}

func (k *KeywordIndex) indexAll() error {
	batch := k.bleveIndex.NewBatch()

	for _, name := range k.icons.names {
		for _, rec := range k.icons.buckets[name] {
			doc := map[string]interface{}{
				"name":     rec.Name,
				"library":  rec.Library,
				"tags":     rec.Tags,
				"aliases":  rec.Aliases,
				"category": rec.Category,
			}

			if err := batch.Index(docID(rec.Library, rec.Name), doc); err != nil {
				log.Printf("Warning: failed to index icon %s/%s: %v", rec.Library, rec.Name, err)
			}
		}
	}

	if err := k.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index icons: %w", err)
	}
	return nil
}

// Count returns the number of indexed documents.
func (k *KeywordIndex) Count() (uint64, error) {
	docCount, err := k.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return docCount, nil
}

// Close releases the bleve index.
func (k *KeywordIndex) Close() error {
	if k.bleveIndex != nil {
		return k.bleveIndex.Close()
	}
	return nil
}

func docID(library, name string) string {
	return library + "/" + name
}

// buildMatchQuery creates the BM25 match query for free text.
func buildMatchQuery(searchText string) query.Query {
	return bleve.NewMatchQuery(searchText)
}
