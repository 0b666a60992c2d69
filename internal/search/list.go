package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

// List returns the records of library (all libraries when empty) in catalog
// order. A non-empty search keeps records whose name or any tag contains it,
// ignoring case. Results are not ranked.
func (idx *Index) List(library, search string) []catalog.IconRecord {
	icons := []catalog.IconRecord{}
	for _, m := range idx.manifests {
		if library != "" && m.Name != library {
			continue
		}
		icons = append(icons, m.Icons...)
	}

	if search == "" {
		return icons
	}

	// Casers carry state and must not be shared between goroutines.
	fold := cases.Fold()
	needle := fold.String(search)

	filtered := icons[:0]
	for _, icon := range icons {
		if matchesFolded(fold, icon, needle) {
			filtered = append(filtered, icon)
		}
	}
	return filtered
}

func matchesFolded(fold cases.Caser, icon catalog.IconRecord, needle string) bool {
	if strings.Contains(fold.String(icon.Name), needle) {
		return true
	}
	for _, tag := range icon.Tags {
		if strings.Contains(fold.String(tag), needle) {
			return true
		}
	}
	return false
}
