package query

import (
	"errors"
	"fmt"

	"github.com/khanglvm/icon-hub-mcp/internal/components"
	"github.com/khanglvm/icon-hub-mcp/internal/history"
)

// ListComponents lists all components or those of req.Category.
func (s *Service) ListComponents(req ComponentListRequest) (resp ComponentListResponse, err error) {
	defer recoverPanic(history.OpComponentList, &err)

	var comps []components.Component
	category := req.Category
	if category == "" {
		category = allLibraries
		comps = s.components.All()
	} else {
		comps = s.components.ByCategory(category)
	}

	resp = ComponentListResponse{
		Total:      len(comps),
		Category:   category,
		Categories: s.components.Categories(),
		Components: make([]components.Summary, 0, len(comps)),
	}
	for _, c := range comps {
		resp.Components = append(resp.Components, c.Summary())
	}

	s.track(history.NewEvent(history.OpComponentList, req.Category, "", len(comps), len(comps) > 0))
	return resp, nil
}

// GetComponent returns the full metadata of one component.
func (s *Service) GetComponent(req ComponentRequest) (c components.Component, err error) {
	defer recoverPanic(history.OpComponentGet, &err)

	name, err := requireText(history.OpComponentGet, "name", req.Name)
	if err != nil {
		return components.Component{}, err
	}

	c, ok := s.components.Get(name)
	s.track(history.NewEvent(history.OpComponentGet, name, "", boolCount(ok), ok))
	if !ok {
		return components.Component{}, invalidf(history.OpComponentGet, "Component %q not found", name)
	}
	return c, nil
}

// SearchComponents matches components by name, description, category or tag.
func (s *Service) SearchComponents(req ComponentSearchRequest) (resp ComponentSearchResponse, err error) {
	defer recoverPanic(history.OpComponentSearch, &err)

	q, err := requireText(history.OpComponentSearch, "query", req.Query)
	if err != nil {
		return ComponentSearchResponse{}, err
	}

	found := s.components.Search(q)
	resp = ComponentSearchResponse{
		Query:   q,
		Count:   len(found),
		Results: make([]ComponentHit, 0, len(found)),
	}
	for _, c := range found {
		resp.Results = append(resp.Results, ComponentHit{
			Summary:   c.Summary(),
			Relevance: components.MatchingTags(c, q),
		})
	}

	s.track(history.NewEvent(history.OpComponentSearch, q, "", len(found), len(found) > 0))
	return resp, nil
}

// ComponentExample returns one example of a component.
func (s *Service) ComponentExample(req ComponentExampleRequest) (resp ComponentExampleResponse, err error) {
	defer recoverPanic(history.OpComponentExample, &err)

	name, err := requireText(history.OpComponentExample, "name", req.Name)
	if err != nil {
		return ComponentExampleResponse{}, err
	}

	ex, total, exErr := s.components.Example(name, req.ExampleIndex)
	s.track(history.NewEvent(history.OpComponentExample, name, "", boolCount(exErr == nil), exErr == nil))

	switch {
	case exErr == nil:
		return ComponentExampleResponse{
			Component:     name,
			ExampleIndex:  req.ExampleIndex,
			TotalExamples: total,
			Example:       &ex,
		}, nil
	case errors.Is(exErr, components.ErrNoExamples):
		return ComponentExampleResponse{
			Component: name,
			Message:   fmt.Sprintf("No examples available for component %q", name),
		}, nil
	case errors.Is(exErr, components.ErrNotFound):
		return ComponentExampleResponse{}, invalidf(history.OpComponentExample, "Component %q not found", name)
	default:
		return ComponentExampleResponse{}, invalidf(history.OpComponentExample,
			"Example index %d out of range (0-%d)", req.ExampleIndex, total-1)
	}
}

func boolCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
