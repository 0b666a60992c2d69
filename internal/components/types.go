/*
Package components holds the UI component catalog served next to the icons.

Each component is described by one JSON document in the components
directory:

	{
	  "name": "button",
	  "category": "forms",
	  "description": "Clickable button with variants",
	  "props": [{"name": "label", "type": "string", "required": true}],
	  "examples": [{"title": "Primary", "description": "...", "code": "<x-button primary />"}],
	  "tags": ["action", "click"]
	}

The registry is loaded once at startup and is read-only afterwards.
*/
package components

// DefaultVersion is applied to documents that omit "version".
const DefaultVersion = "1.0.0"

// Component is the metadata of one UI component.
type Component struct {
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	Version          string    `json:"version"`
	WireUIVersion    string    `json:"wireui_version,omitempty"`
	Props            []Prop    `json:"props"`
	Slots            []Slot    `json:"slots"`
	Events           []Event   `json:"events"`
	WireUIFeatures   []string  `json:"wireui_features"`
	AlpineDirectives []string  `json:"alpine_directives"`
	TailwindClasses  []string  `json:"tailwind_classes"`
	Examples         []Example `json:"examples"`
	BestPractices    []string  `json:"best_practices"`
	Accessibility    []string  `json:"accessibility"`
	Dependencies     []string  `json:"dependencies"`
	Tags             []string  `json:"tags"`
}

// Prop is a component attribute.
type Prop struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Slot is a named content slot.
type Slot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Event is a browser or Livewire event emitted by the component.
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Payload     string `json:"payload,omitempty"`
}

// Example is a titled usage snippet.
type Example struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Code            string `json:"code"`
	LivewireContext string `json:"livewire_context,omitempty"`
}

// Summary is the short form used by listings.
type Summary struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Summary returns the listing form of c.
func (c Component) Summary() Summary {
	return Summary{Name: c.Name, Category: c.Category, Description: c.Description}
}

func (c *Component) applyDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	c.Props = nonNil(c.Props)
	c.Slots = nonNil(c.Slots)
	c.Events = nonNil(c.Events)
	c.Examples = nonNil(c.Examples)
	c.WireUIFeatures = nonNil(c.WireUIFeatures)
	c.AlpineDirectives = nonNil(c.AlpineDirectives)
	c.TailwindClasses = nonNil(c.TailwindClasses)
	c.BestPractices = nonNil(c.BestPractices)
	c.Accessibility = nonNil(c.Accessibility)
	c.Dependencies = nonNil(c.Dependencies)
	c.Tags = nonNil(c.Tags)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
