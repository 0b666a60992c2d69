package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/khanglvm/icon-hub-mcp/internal/query"
)

// Tool names.
const (
	ToolIconsList         = "icons_list"
	ToolIconsCheck        = "icons_check"
	ToolIconsFindSimilar  = "icons_find_similar"
	ToolIconsExample      = "icons_example"
	ToolIconsSearch       = "icons_search"
	ToolComponentsList    = "components_list"
	ToolComponentsGet     = "components_get"
	ToolComponentsSearch  = "components_search"
	ToolComponentsExample = "components_example"
)

func (s *Server) registerTools() {
	catalog := s.libraryCatalog()

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolIconsList,
		Description: fmt.Sprintf(`List available icons, grouped by library.

WHEN TO USE: Browse what exists before writing markup, or filter by a word ("arrow", "user").

AVAILABLE LIBRARIES:
%s
Returns: total count, icons per library with their variants, and install commands.`, catalog),
	}, s.service.List)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolIconsCheck,
		Description: `Check whether an icon exists, optionally in one library and variant.

WHEN TO USE: Before emitting <x-icon name="..."> markup, to avoid broken icons.

Returns: exists flag, library, variants. On a miss, up to 5 "did you mean" suggestions.`,
	}, s.service.Check)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolIconsFindSimilar,
		Description: `Find icons with names similar to the given one.

WHEN TO USE: When a guessed icon name does not exist (e.g. "trash-can" vs "trash").

Returns: suggestions ranked by similarity (0-1) across all libraries.`,
	}, s.service.FindSimilar)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolIconsExample,
		Description: `Get a usage guide for one icon: install command, Blade markup for every variant, attribute examples.

WHEN TO USE: When you know the icon and need copy-paste markup.

Example: icons_example(name="arrow-up", library="heroicons", variant="solid")`,
	}, s.service.ExampleUsage)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolIconsSearch,
		Description: `Search icons by keywords across names, tags, aliases and categories.

WHEN TO USE: When you know the concept ("home", "settings", "delete") but not the icon name.

Returns: BM25-ranked hits with library and variants.`,
	}, s.service.Search)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolComponentsList,
		Description: `List UI components, optionally of one category.

Returns: component names, categories and descriptions.`,
	}, s.service.ListComponents)

	addTool(s.server, &mcpsdk.Tool{
		Name: ToolComponentsGet,
		Description: `Get the full metadata of a UI component: props, slots, events, examples, best practices.

WHEN TO USE: Before writing markup for a component.`,
	}, s.service.GetComponent)

	addTool(s.server, &mcpsdk.Tool{
		Name:        ToolComponentsSearch,
		Description: `Search UI components by name, description, category or tag.`,
	}, s.service.SearchComponents)

	addTool(s.server, &mcpsdk.Tool{
		Name:        ToolComponentsExample,
		Description: `Get one code example of a UI component by zero-based index.`,
	}, s.service.ComponentExample)
}

// libraryCatalog lists the loaded libraries for tool descriptions.
func (s *Server) libraryCatalog() string {
	var b strings.Builder
	for _, lib := range s.service.Libraries() {
		fmt.Fprintf(&b, "- %s (%d icons)\n", lib.ID, lib.Icons)
	}
	if b.Len() == 0 {
		return "(none loaded)\n"
	}
	return b.String()
}

// addTool registers fn as a typed tool. Strings are returned as text, other
// values as compact JSON.
func addTool[In, Out any](server *mcpsdk.Server, tool *mcpsdk.Tool, fn func(In) (Out, error)) {
	mcpsdk.AddTool(server, tool, func(ctx context.Context, req *mcpsdk.CallToolRequest, in In) (*mcpsdk.CallToolResult, any, error) {
		out, err := fn(in)
		if err != nil {
			return errorResult(err), nil, nil
		}
		res, err := textResult(out)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return res, nil, nil
	})
}

func textResult(v any) (*mcpsdk.CallToolResult, error) {
	text, ok := v.(string)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode response: %w", err)
		}
		text = string(data)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}, nil
}

// errorResult reports err as a tool error. Errors that are not query errors
// are reported as internal.
func errorResult(err error) *mcpsdk.CallToolResult {
	msg := err.Error()
	if query.KindOf(err) == 0 {
		msg = query.ErrInternal.Error() + ": " + msg
	}
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
	}
}
