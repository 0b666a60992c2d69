/*
Package query is the request/response layer over the icon index and the
component registry.

Every operation takes an explicit request struct, validates it, and returns
either a response or a *Error of kind KindInvalidRequest or KindInternal.
A missing icon is a normal response. Panics raised while answering are
recovered into KindInternal errors so one bad query cannot take the server
down.

Answered queries are reported to an optional Tracker, which must not block.
*/
package query

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/khanglvm/icon-hub-mcp/internal/components"
	"github.com/khanglvm/icon-hub-mcp/internal/config"
	"github.com/khanglvm/icon-hub-mcp/internal/history"
	"github.com/khanglvm/icon-hub-mcp/internal/search"
)

// allLibraries is accepted wherever a library filter is, meaning "any".
const allLibraries = "all"

// Tracker receives answered queries.
type Tracker interface {
	Track(event history.Event)
}

// Options configures a Service.
type Options struct {
	// Index is required.
	Index *search.Index

	// Keywords is built from Index when nil.
	Keywords *search.KeywordIndex

	// Components defaults to an empty registry.
	Components *components.Registry

	// Libraries provides installation hints and component templates.
	Libraries []*config.LibraryConfig

	// Tracker is optional.
	Tracker Tracker
}

// Service answers icon and component queries. It is safe for concurrent use.
type Service struct {
	index      *search.Index
	keywords   *search.KeywordIndex
	components *components.Registry
	libraries  map[string]*config.LibraryConfig
	tracker    Tracker
}

// NewService builds a service from opts.
func NewService(opts Options) (*Service, error) {
	if opts.Index == nil {
		return nil, fmt.Errorf("query service requires an index")
	}

	keywords := opts.Keywords
	if keywords == nil {
		k, err := search.NewKeywordIndex(opts.Index)
		if err != nil {
			return nil, fmt.Errorf("failed to build keyword index: %w", err)
		}
		keywords = k
	}

	registry := opts.Components
	if registry == nil {
		registry = components.New()
	}

	libs := make(map[string]*config.LibraryConfig, len(opts.Libraries))
	for _, lib := range opts.Libraries {
		libs[lib.ID] = lib
	}

	return &Service{
		index:      opts.Index,
		keywords:   keywords,
		components: registry,
		libraries:  libs,
		tracker:    opts.Tracker,
	}, nil
}

// Close releases the keyword index.
func (s *Service) Close() error {
	if s.keywords == nil {
		return nil
	}
	return s.keywords.Close()
}

// Libraries reports the loaded libraries in load order.
func (s *Service) Libraries() []LibraryStats {
	var out []LibraryStats
	for _, id := range s.index.Libraries() {
		m, _ := s.index.Manifest(id)
		out = append(out, LibraryStats{
			ID:      id,
			Version: m.Version,
			Icons:   len(m.Icons),
			Skipped: m.Skipped,
		})
	}
	return out
}

// ComponentCount returns the number of registered components.
func (s *Service) ComponentCount() int {
	return s.components.Len()
}

func (s *Service) track(ev history.Event) {
	if s.tracker != nil {
		s.tracker.Track(ev)
	}
}

// recoverPanic turns a panic in op into a KindInternal error.
func recoverPanic(op string, err *error) {
	if r := recover(); r != nil {
		log.Printf("Warning: %s query panicked: %v", op, r)
		*err = &Error{Kind: KindInternal, Op: op, Msg: fmt.Sprintf("%s failed: %v", op, r)}
	}
}

// resolveLibrary normalizes a library filter. "" and "all" mean no filter.
func (s *Service) resolveLibrary(op, library string) (string, error) {
	library = strings.TrimSpace(library)
	if library == "" || library == allLibraries {
		return "", nil
	}
	if s.index.HasLibrary(library) || s.libraries[library] != nil {
		return library, nil
	}
	return "", invalidf(op, "unknown library '%s' (available: %s)", library, strings.Join(s.knownLibraries(), ", "))
}

func (s *Service) knownLibraries() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range s.index.Libraries() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	var extra []string
	for id := range s.libraries {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

func (s *Service) installCommand(library string) string {
	if lib := s.libraries[library]; lib != nil {
		return lib.Install
	}
	return ""
}

func requireText(op, field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidf(op, "%s is required", field)
	}
	return value, nil
}
