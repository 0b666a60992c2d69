package query

import (
	"fmt"

	"github.com/khanglvm/icon-hub-mcp/internal/history"
)

const listNote = "Make sure to install the required icon packages in your Laravel project to use these icons."

// List returns the icons of the selected libraries matching req.Search,
// grouped by library.
func (s *Service) List(req ListRequest) (resp ListResponse, err error) {
	defer recoverPanic(history.OpList, &err)

	library, err := s.resolveLibrary(history.OpList, req.Library)
	if err != nil {
		return ListResponse{}, err
	}

	icons := s.index.List(library, req.Search)

	resp = ListResponse{
		Total:        len(icons),
		Icons:        icons,
		Libraries:    make(map[string][]IconSummary),
		Installation: make(map[string]string),
		Note:         listNote,
	}
	for _, icon := range icons {
		resp.Libraries[icon.Library] = append(resp.Libraries[icon.Library], IconSummary{
			Name:     icon.Name,
			Variants: icon.Variants,
		})
	}
	for _, id := range s.index.Libraries() {
		if library != "" && id != library {
			continue
		}
		if cmd := s.installCommand(id); cmd != "" {
			resp.Installation[id] = cmd
		}
	}

	s.track(history.NewEvent(history.OpList, req.Search, library, len(icons), len(icons) > 0))
	return resp, nil
}

// Check reports whether an icon exists.
func (s *Service) Check(req CheckRequest) (resp CheckResponse, err error) {
	defer recoverPanic(history.OpCheck, &err)

	name, err := requireText(history.OpCheck, "name", req.Name)
	if err != nil {
		return CheckResponse{}, err
	}
	library, err := s.resolveLibrary(history.OpCheck, req.Library)
	if err != nil {
		return CheckResponse{}, err
	}

	res := s.index.Check(name, library, req.Variant)
	resp = CheckResponse{CheckResult: res}
	if res.Exists && res.Library != "" {
		if cmd := s.installCommand(res.Library); cmd != "" {
			resp.Installation = &Installation{
				Required: true,
				Command:  cmd,
				Note:     fmt.Sprintf("This icon requires the %s package to be installed in your Laravel project.", res.Library),
			}
		}
	}

	results := len(res.Suggestions)
	if res.Exists {
		results = 1
	}
	s.track(history.NewEvent(history.OpCheck, name, library, results, res.Exists))
	return resp, nil
}

// FindSimilar returns ranked suggestions for req.Name. A zero limit means
// the default of 5.
func (s *Service) FindSimilar(req SimilarRequest) (resp SimilarResponse, err error) {
	defer recoverPanic(history.OpSimilar, &err)

	name, err := requireText(history.OpSimilar, "name", req.Name)
	if err != nil {
		return SimilarResponse{}, err
	}
	if req.Limit < 0 {
		return SimilarResponse{}, invalidf(history.OpSimilar, "limit must not be negative, got %d", req.Limit)
	}

	suggestions := s.index.FindSimilar(name, req.Limit)

	commands := make(map[string]string)
	for _, sug := range suggestions {
		if cmd := s.installCommand(sug.Library); cmd != "" {
			commands[sug.Library] = cmd
		}
	}

	s.track(history.NewEvent(history.OpSimilar, name, "", len(suggestions), len(suggestions) > 0))
	return SimilarResponse{
		Query:       name,
		Suggestions: suggestions,
		Installation: SimilarInstallation{
			Note:     "To use these icons, install the required packages:",
			Commands: commands,
		},
	}, nil
}

// Search runs a keyword search over names, tags, aliases and categories.
func (s *Service) Search(req SearchRequest) (resp SearchResponse, err error) {
	defer recoverPanic(history.OpSearch, &err)

	text, err := requireText(history.OpSearch, "query", req.Query)
	if err != nil {
		return SearchResponse{}, err
	}
	if req.Limit < 0 {
		return SearchResponse{}, invalidf(history.OpSearch, "limit must not be negative, got %d", req.Limit)
	}
	library, err := s.resolveLibrary(history.OpSearch, req.Library)
	if err != nil {
		return SearchResponse{}, err
	}

	hits, err := s.keywords.Search(text, library, req.Limit)
	if err != nil {
		return SearchResponse{}, &Error{Kind: KindInternal, Op: history.OpSearch, Msg: err.Error()}
	}

	ev := history.NewEvent(history.OpSearch, text, library, len(hits), len(hits) > 0)
	s.track(ev)
	return SearchResponse{
		SearchID: ev.SearchID,
		Query:    text,
		Total:    len(hits),
		Hits:     hits,
	}, nil
}
