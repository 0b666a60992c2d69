package search

import (
	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

// Index maps icon names to the records sharing that name.
// It is immutable once built.
type Index struct {
	manifests []catalog.Manifest

	// names keeps first-insertion order of bucket keys.
	names   []string
	buckets map[string][]catalog.IconRecord
	total   int
}

// Build constructs an index from manifests in the given order, appending
// each record under its name. Records are never deduplicated.
func Build(manifests ...catalog.Manifest) *Index {
	idx := &Index{
		manifests: make([]catalog.Manifest, len(manifests)),
		buckets:   make(map[string][]catalog.IconRecord),
	}
	copy(idx.manifests, manifests)

	for _, m := range manifests {
		for _, rec := range m.Icons {
			if _, seen := idx.buckets[rec.Name]; !seen {
				idx.names = append(idx.names, rec.Name)
			}
			idx.buckets[rec.Name] = append(idx.buckets[rec.Name], rec)
			idx.total++
		}
	}

	return idx
}

// Bucket returns the records registered under name, in load order.
func (idx *Index) Bucket(name string) []catalog.IconRecord {
	return idx.buckets[name]
}

// Names returns bucket keys in first-insertion order.
func (idx *Index) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}

// Len returns the total number of indexed records.
func (idx *Index) Len() int {
	return idx.total
}

// Libraries returns the library ids in load order.
func (idx *Index) Libraries() []string {
	libs := make([]string, 0, len(idx.manifests))
	for _, m := range idx.manifests {
		libs = append(libs, m.Name)
	}
	return libs
}

// HasLibrary reports whether a manifest for library was loaded.
func (idx *Index) HasLibrary(library string) bool {
	for _, m := range idx.manifests {
		if m.Name == library {
			return true
		}
	}
	return false
}

// Manifest returns the manifest of library, if loaded.
func (idx *Index) Manifest(library string) (catalog.Manifest, bool) {
	for _, m := range idx.manifests {
		if m.Name == library {
			return m, true
		}
	}
	return catalog.Manifest{}, false
}
