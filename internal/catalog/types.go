/*
Package catalog loads icon library manifests into validated in-memory records.

Each supported library ships one manifest document:

	{
	  "name": "heroicons",
	  "version": "2.1.5",
	  "totalIcons": 292,
	  "variants": ["outline", "solid", "mini.solid"],
	  "lastUpdated": "2024-06-01T00:00:00Z",
	  "icons": [
	    {"name": "user", "library": "heroicons", "variants": ["outline", "solid"], "tags": ["person"]}
	  ]
	}

Loading never fails startup: a source that cannot be read or parsed is
reported as a LoadError and replaced by an empty manifest in Resolve.
*/
package catalog

// Built-in library identifiers.
const (
	Heroicons = "heroicons"
	Phosphor  = "phosphor"
)

// IconRecord is one icon in one library.
type IconRecord struct {
	// Name is unique within its library but not across libraries.
	Name string `json:"name" yaml:"name"`

	// Library identifies the source catalog.
	Library string `json:"library" yaml:"library"`

	// Variants lists the style identifiers in declaration order.
	Variants []string `json:"variants" yaml:"variants"`

	// Aliases are alternate names. Not used for exact lookup.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Tags are free-text tokens used by similarity scoring and listing.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Category is informational only.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// HasVariant reports whether v is one of the record's variants.
func (r IconRecord) HasVariant(v string) bool {
	for _, have := range r.Variants {
		if have == v {
			return true
		}
	}
	return false
}

// Manifest is the parsed content of one library document.
type Manifest struct {
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	TotalIcons  int          `json:"totalIcons"`
	Variants    []string     `json:"variants"`
	Icons       []IconRecord `json:"icons"`
	LastUpdated string       `json:"lastUpdated"`

	// Skipped counts records dropped by validation.
	Skipped int `json:"-"`
}

// EmptyManifest returns the placeholder used when a library fails to load.
func EmptyManifest(library string) Manifest {
	return Manifest{
		Name:       library,
		TotalIcons: 0,
		Variants:   []string{},
		Icons:      []IconRecord{},
	}
}

// Source locates one library manifest on disk.
type Source struct {
	Library string
	Path    string
}
