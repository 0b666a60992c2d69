package query

import (
	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
	"github.com/khanglvm/icon-hub-mcp/internal/components"
	"github.com/khanglvm/icon-hub-mcp/internal/search"
)

// ListRequest selects icons by library and substring. Empty fields (and the
// library "all") mean "not specified".
type ListRequest struct {
	Library string `json:"library,omitempty" jsonschema:"Icon library: heroicons, phosphor or all"`
	Search  string `json:"search,omitempty" jsonschema:"Case-insensitive substring matched against names and tags"`
}

// IconSummary is the per-icon entry of a grouped listing.
type IconSummary struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// ListResponse groups matching icons by library.
type ListResponse struct {
	Total        int                      `json:"totalIcons"`
	Icons        []catalog.IconRecord     `json:"-"`
	Libraries    map[string][]IconSummary `json:"libraries"`
	Installation map[string]string        `json:"installation"`
	Note         string                   `json:"note"`
}

// CheckRequest asks whether an icon exists.
type CheckRequest struct {
	Name    string `json:"name" jsonschema:"Icon name, e.g. arrow-up"`
	Library string `json:"library,omitempty" jsonschema:"Restrict the check to one library"`
	Variant string `json:"variant,omitempty" jsonschema:"Variant to verify, e.g. outline or solid"`
}

// Installation tells how to install the library of a found icon.
type Installation struct {
	Required bool   `json:"required"`
	Command  string `json:"command"`
	Note     string `json:"note"`
}

// CheckResponse is a CheckResult plus installation info when the icon exists.
type CheckResponse struct {
	search.CheckResult
	Installation *Installation `json:"installation,omitempty"`
}

// SimilarRequest asks for "did you mean" suggestions.
type SimilarRequest struct {
	Name  string `json:"name" jsonschema:"Icon name to find similar icons for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of suggestions (default 5)"`
}

// SimilarInstallation lists install commands for the suggested libraries.
type SimilarInstallation struct {
	Note     string            `json:"note"`
	Commands map[string]string `json:"commands"`
}

// SimilarResponse carries ranked suggestions.
type SimilarResponse struct {
	Query        string              `json:"query"`
	Suggestions  []search.Suggestion `json:"suggestions"`
	Installation SimilarInstallation `json:"installation"`
}

// ExampleRequest asks for a usage guide of one icon.
type ExampleRequest struct {
	Name    string `json:"name" jsonschema:"Icon name"`
	Library string `json:"library" jsonschema:"Icon library: heroicons or phosphor"`
	Variant string `json:"variant,omitempty" jsonschema:"Icon variant; defaults to the first available"`
}

// SearchRequest runs a keyword search.
type SearchRequest struct {
	Query   string `json:"query" jsonschema:"Free-text keywords matched against names, tags, aliases and categories"`
	Library string `json:"library,omitempty" jsonschema:"Restrict hits to one library"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of hits (default 10)"`
}

// SearchResponse carries BM25-ranked hits.
type SearchResponse struct {
	SearchID string              `json:"searchId"`
	Query    string              `json:"query"`
	Total    int                 `json:"total"`
	Hits     []search.KeywordHit `json:"hits"`
}

// ComponentListRequest lists components, optionally of one category.
type ComponentListRequest struct {
	Category string `json:"category,omitempty" jsonschema:"Component category; all categories when empty"`
}

// ComponentListResponse is a component listing.
type ComponentListResponse struct {
	Total      int                  `json:"total"`
	Category   string               `json:"category"`
	Categories []string             `json:"categories"`
	Components []components.Summary `json:"components"`
}

// ComponentRequest names one component.
type ComponentRequest struct {
	Name string `json:"name" jsonschema:"Component name, e.g. button"`
}

// ComponentSearchRequest searches components.
type ComponentSearchRequest struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring matched against name, description, category and tags"`
}

// ComponentHit is a component search result. Relevance lists the tags that
// matched the query.
type ComponentHit struct {
	components.Summary
	Relevance []string `json:"relevance"`
}

// ComponentSearchResponse carries component search results.
type ComponentSearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []ComponentHit `json:"results"`
}

// ComponentExampleRequest selects one example of a component.
type ComponentExampleRequest struct {
	Name         string `json:"name" jsonschema:"Component name"`
	ExampleIndex int    `json:"exampleIndex,omitempty" jsonschema:"Zero-based example index (default 0)"`
}

// ComponentExampleResponse carries one example. Message is set instead of
// Example when the component has none.
type ComponentExampleResponse struct {
	Component     string              `json:"component"`
	ExampleIndex  int                 `json:"exampleIndex"`
	TotalExamples int                 `json:"totalExamples"`
	Example       *components.Example `json:"example,omitempty"`
	Message       string              `json:"message,omitempty"`
}

// LibraryStats describes one loaded library.
type LibraryStats struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
	Icons   int    `json:"icons"`
	Skipped int    `json:"skipped"`
}
