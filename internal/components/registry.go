package components

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrNotFound is returned for an unknown component name.
	ErrNotFound = errors.New("component not found")

	// ErrExampleOutOfRange is returned for an example index past the end.
	ErrExampleOutOfRange = errors.New("example index out of range")

	// ErrNoExamples is returned when the component has no examples at all.
	ErrNoExamples = errors.New("no examples available")
)

// Registry is an immutable set of components keyed by name.
type Registry struct {
	byName     map[string]Component
	byCategory map[string][]Component
	names      []string
}

// New builds a registry. A later component replaces an earlier one with the
// same name.
func New(comps ...Component) *Registry {
	r := &Registry{
		byName:     make(map[string]Component, len(comps)),
		byCategory: make(map[string][]Component),
	}
	for _, c := range comps {
		c.applyDefaults()
		r.byName[c.Name] = c
	}

	r.names = make([]string, 0, len(r.byName))
	for name := range r.byName {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		c := r.byName[name]
		r.byCategory[c.Category] = append(r.byCategory[c.Category], c)
	}
	return r
}

// LoadDir reads every *.json file in dir. Unparsable or incomplete files are
// skipped with a warning. A missing or unreadable directory yields an empty
// registry.
func LoadDir(dir string) *Registry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Warning: cannot read components directory %s: %v", dir, err)
		return New()
	}

	var comps []Component
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		c, err := loadFile(path)
		if err != nil {
			log.Printf("Warning: skipping component %s: %v", path, err)
			continue
		}
		comps = append(comps, c)
	}

	r := New(comps...)
	log.Printf("Loaded %d components", r.Len())
	return r
}

func loadFile(path string) (Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Component{}, err
	}

	var c Component
	if err := json.Unmarshal(data, &c); err != nil {
		return Component{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate(c); err != nil {
		return Component{}, err
	}
	return c, nil
}

func validate(c Component) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(c.Category) == "":
		return errors.New("missing category")
	case strings.TrimSpace(c.Description) == "":
		return errors.New("missing description")
	}
	return nil
}

// Len returns the number of components.
func (r *Registry) Len() int {
	return len(r.names)
}

// All returns every component sorted by name.
func (r *Registry) All() []Component {
	out := make([]Component, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

// Get returns the component called name.
func (r *Registry) Get(name string) (Component, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// ByCategory returns the components of category sorted by name.
func (r *Registry) ByCategory(category string) []Component {
	return append([]Component{}, r.byCategory[category]...)
}

// Categories returns the sorted category names.
func (r *Registry) Categories() []string {
	cats := make([]string, 0, len(r.byCategory))
	for cat := range r.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Search returns components whose name, description, category or a tag
// contains q, ignoring case.
func (r *Registry) Search(q string) []Component {
	fold := cases.Fold()
	needle := fold.String(q)

	out := []Component{}
	for _, name := range r.names {
		c := r.byName[name]
		if strings.Contains(fold.String(c.Name), needle) ||
			strings.Contains(fold.String(c.Description), needle) ||
			strings.Contains(fold.String(c.Category), needle) ||
			len(MatchingTags(c, q)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// MatchingTags returns the tags of c that contain q, ignoring case.
func MatchingTags(c Component, q string) []string {
	fold := cases.Fold()
	needle := fold.String(q)

	tags := []string{}
	for _, tag := range c.Tags {
		if strings.Contains(fold.String(tag), needle) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Example returns example index of component name along with the number of
// examples the component has.
func (r *Registry) Example(name string, index int) (Example, int, error) {
	c, ok := r.byName[name]
	if !ok {
		return Example{}, 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	total := len(c.Examples)
	if total == 0 {
		return Example{}, 0, fmt.Errorf("%w for component %q", ErrNoExamples, name)
	}
	if index < 0 || index >= total {
		return Example{}, total, fmt.Errorf("%w: %d (0-%d)", ErrExampleOutOfRange, index, total-1)
	}
	return c.Examples[index], total, nil
}
