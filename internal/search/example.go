package search

import (
	"fmt"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

// Example renders the Blade <x-icon> snippet for an icon. When the icon or
// variant cannot be resolved the check message is returned as an HTML
// comment. An empty variant selects the icon's first variant.
func (idx *Index) Example(name, library, variant string) string {
	res := idx.Check(name, library, variant)
	if !res.Exists {
		return fmt.Sprintf("<!-- %s -->", res.Message)
	}

	use := variant
	if use == "" && len(res.Variants) > 0 {
		use = res.Variants[0]
	}

	switch library {
	case catalog.Heroicons:
		switch use {
		case "outline":
			return fmt.Sprintf(`<x-icon name="%s" />`, name)
		case "solid":
			return fmt.Sprintf(`<x-icon name="%s" solid />`, name)
		case "mini.solid":
			return fmt.Sprintf(`<x-icon name="%s" solid mini />`, name)
		}
	case catalog.Phosphor:
		if use == "regular" {
			return fmt.Sprintf(`<x-icon name="%s" />`, name)
		}
		return fmt.Sprintf(`<x-icon name="%s" %s />`, name, use)
	}

	return fmt.Sprintf(`<x-icon name="%s" />`, name)
}
