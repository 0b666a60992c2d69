package search

import (
	"fmt"
	"strings"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

// Check reports whether name exists, optionally scoped to library and
// variant. Empty library or variant means "not specified".
//
// A global miss attaches similarity suggestions; a miss scoped to a library
// does not. When several libraries define name and no library is given, the
// first record in load order answers.
func (idx *Index) Check(name, library, variant string) CheckResult {
	records := idx.buckets[name]

	if len(records) == 0 {
		suggestions := idx.FindSimilar(name, DefaultSuggestionLimit)
		msg := fmt.Sprintf("Icon '%s' not found.", name)
		if len(suggestions) > 0 {
			msg = fmt.Sprintf("Icon '%s' not found. Did you mean '%s'?", name, suggestions[0].Name)
		}
		return CheckResult{
			Exists:      false,
			Suggestions: suggestions,
			Message:     msg,
		}
	}

	rec, ok := firstInLibrary(records, library)
	if !ok {
		return CheckResult{
			Exists:  false,
			Message: fmt.Sprintf("Icon '%s' not found in %s library.", name, library),
		}
	}

	if variant != "" && !rec.HasVariant(variant) {
		return CheckResult{
			Exists:   true,
			Library:  rec.Library,
			Variants: rec.Variants,
			Message: fmt.Sprintf("Icon '%s' exists but variant '%s' not found. Available: %s",
				name, variant, strings.Join(rec.Variants, ", ")),
		}
	}

	return CheckResult{
		Exists:   true,
		Library:  rec.Library,
		Variants: rec.Variants,
	}
}

func firstInLibrary(records []catalog.IconRecord, library string) (catalog.IconRecord, bool) {
	for _, rec := range records {
		if library == "" || rec.Library == library {
			return rec, true
		}
	}
	return catalog.IconRecord{}, false
}
