package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of loading one source: either Manifest or Err is set.
type Result struct {
	Source   Source
	Manifest Manifest
	Err      error
}

// rawManifest defers record decoding so one bad record cannot lose the rest.
type rawManifest struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	TotalIcons  int               `json:"totalIcons"`
	Variants    []string          `json:"variants"`
	Icons       []json.RawMessage `json:"icons"`
	LastUpdated string            `json:"lastUpdated"`
}

// LoadAll loads every source in order. It never fails as a whole.
func LoadAll(sources []Source) []Result {
	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		m, err := Load(src)
		results = append(results, Result{Source: src, Manifest: m, Err: err})
	}
	return results
}

// Load reads, parses and validates a single manifest source.
func Load(src Source) (Manifest, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return Manifest{}, &LoadError{Library: src.Library, Path: src.Path, Op: OpRead, Err: err}
	}
	return Parse(src, data)
}

// Parse decodes manifest content. YAML is accepted for .yaml/.yml paths.
func Parse(src Source, data []byte) (Manifest, error) {
	if isYAML(src.Path) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return Manifest{}, &LoadError{Library: src.Library, Path: src.Path, Op: OpParse, Err: err}
		}
		data = converted
	}

	if !json.Valid(data) {
		return Manifest{}, &LoadError{
			Library: src.Library,
			Path:    src.Path,
			Op:      OpParse,
			Err:     fmt.Errorf("malformed JSON"),
		}
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Manifest{}, &LoadError{Library: src.Library, Path: src.Path, Op: OpDecode, Err: err}
	}

	m := Manifest{
		Name:        src.Library,
		Version:     raw.Version,
		TotalIcons:  raw.TotalIcons,
		Variants:    raw.Variants,
		LastUpdated: raw.LastUpdated,
		Icons:       make([]IconRecord, 0, len(raw.Icons)),
	}
	if m.Variants == nil {
		m.Variants = []string{}
	}
	if raw.Name != "" && raw.Name != src.Library {
		log.Printf("Warning: manifest %s declares library %q, using %q", src.Path, raw.Name, src.Library)
	}

	for i, msg := range raw.Icons {
		var rec IconRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			log.Printf("Warning: skipping %s icon #%d: %v", src.Library, i, err)
			m.Skipped++
			continue
		}
		if err := validateRecord(&rec, src.Library); err != nil {
			log.Printf("Warning: skipping %s icon #%d: %v", src.Library, i, err)
			m.Skipped++
			continue
		}
		m.Icons = append(m.Icons, rec)
	}

	return m, nil
}

// Resolve applies the fallback policy: failed sources become empty manifests.
// The returned manifests keep the order of results.
func Resolve(results []Result) []Manifest {
	manifests := make([]Manifest, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			log.Printf("Warning: %v (continuing with empty %s catalog)", r.Err, r.Source.Library)
			manifests = append(manifests, EmptyManifest(r.Source.Library))
			continue
		}
		log.Printf("Loaded %d %s icons (%d skipped)", len(r.Manifest.Icons), r.Source.Library, r.Manifest.Skipped)
		manifests = append(manifests, r.Manifest)
	}
	return manifests
}

// validateRecord checks a record against its owning library.
// An empty library is filled in from the manifest.
func validateRecord(rec *IconRecord, library string) error {
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	}
	if len(rec.Variants) == 0 {
		return fmt.Errorf("%w: %s has no variants", ErrInvalidRecord, rec.Name)
	}
	if rec.Library == "" {
		rec.Library = library
	}
	if rec.Library != library {
		return fmt.Errorf("%w: %s belongs to %q, not %q", ErrInvalidRecord, rec.Name, rec.Library, library)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
