package mcp

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
	"github.com/khanglvm/icon-hub-mcp/internal/components"
	"github.com/khanglvm/icon-hub-mcp/internal/config"
	"github.com/khanglvm/icon-hub-mcp/internal/query"
	"github.com/khanglvm/icon-hub-mcp/internal/search"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	idx := search.Build(
		catalog.Manifest{
			Name: catalog.Heroicons,
			Icons: []catalog.IconRecord{
				{Name: "user", Library: catalog.Heroicons, Variants: []string{"outline", "solid"}},
				{Name: "trash", Library: catalog.Heroicons, Variants: []string{"outline"}, Tags: []string{"delete"}},
			},
		},
		catalog.Manifest{
			Name: catalog.Phosphor,
			Icons: []catalog.IconRecord{
				{Name: "house", Library: catalog.Phosphor, Variants: []string{"regular"}, Tags: []string{"home"}},
			},
		},
	)
	svc, err := query.NewService(query.Options{
		Index: idx,
		Components: components.New(components.Component{
			Name:        "button",
			Category:    "forms",
			Description: "Clickable button",
			Examples:    []components.Example{{Title: "Primary", Description: "d", Code: "<x-button primary />"}},
		}),
		Libraries: config.NewConfig().Libraries,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return NewServer(svc, "test")
}

func connect(t *testing.T, s *Server) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := s.server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callText(t *testing.T, session *mcpsdk.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s) failed: %v", name, err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestListTools(t *testing.T) {
	session := connect(t, newTestServer(t))

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %s has no input schema", tool.Name)
		}
	}
	sort.Strings(names)

	want := []string{
		ToolComponentsExample, ToolComponentsGet, ToolComponentsList, ToolComponentsSearch,
		ToolIconsCheck, ToolIconsExample, ToolIconsFindSimilar, ToolIconsList, ToolIconsSearch,
	}
	sort.Strings(want)
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("tools = %v, want %v", names, want)
	}
}

func TestListToolDescribesLibraries(t *testing.T) {
	s := newTestServer(t)

	catalog := s.libraryCatalog()
	if !strings.Contains(catalog, "- heroicons (2 icons)") || !strings.Contains(catalog, "- phosphor (1 icons)") {
		t.Errorf("unexpected catalog:\n%s", catalog)
	}
}

func TestCheckTool(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, isErr := callText(t, session, ToolIconsCheck, map[string]any{"name": "user", "variant": "solid"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}

	var resp struct {
		Exists       bool   `json:"exists"`
		Library      string `json:"library"`
		Installation struct {
			Command string `json:"command"`
		} `json:"installation"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, text)
	}
	if !resp.Exists || resp.Library != "heroicons" || resp.Installation.Command != "composer require wireui/heroicons" {
		t.Errorf("unexpected response %s", text)
	}
	if strings.Contains(text, "\n  ") {
		t.Error("response should be compact JSON")
	}
}

func TestCheckToolMiss(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, isErr := callText(t, session, ToolIconsCheck, map[string]any{"name": "users"})
	if isErr {
		t.Fatalf("a miss is not an error: %s", text)
	}
	if !strings.Contains(text, `"exists":false`) || !strings.Contains(text, "Did you mean 'user'?") {
		t.Errorf("unexpected miss response %s", text)
	}
}

func TestToolErrors(t *testing.T) {
	session := connect(t, newTestServer(t))

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{ToolIconsList, map[string]any{"library": "feather"}, "invalid request: unknown library 'feather'"},
		{ToolIconsCheck, map[string]any{"name": " "}, "invalid request: name is required"},
		{ToolIconsFindSimilar, map[string]any{"name": "user", "limit": -1}, "invalid request: limit must not be negative"},
		{ToolComponentsGet, map[string]any{"name": "slider"}, `invalid request: Component "slider" not found`},
		{ToolComponentsExample, map[string]any{"name": "button", "exampleIndex": 4}, "invalid request: Example index 4 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			text, isErr := callText(t, session, tt.tool, tt.args)
			if !isErr {
				t.Fatalf("expected tool error, got %s", text)
			}
			if !strings.HasPrefix(text, tt.want) {
				t.Errorf("error %q should start with %q", text, tt.want)
			}
		})
	}
}

func TestExampleToolReturnsMarkdown(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, isErr := callText(t, session, ToolIconsExample, map[string]any{"name": "house", "library": "phosphor"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.HasPrefix(text, "## Icon: house (phosphor)") {
		t.Errorf("expected markdown guide, got %s", text)
	}
	if !strings.Contains(text, "<x-phosphor.icons::regular.house class=\"w-6 h-6\" />") {
		t.Errorf("missing component syntax:\n%s", text)
	}
}

func TestSearchAndListTools(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, _ := callText(t, session, ToolIconsSearch, map[string]any{"query": "delete"})
	if !strings.Contains(text, `"name":"trash"`) {
		t.Errorf("search should find trash by tag: %s", text)
	}

	text, _ = callText(t, session, ToolIconsList, map[string]any{"library": "all", "search": "HOUSE"})
	var list struct {
		Total     int                          `json:"totalIcons"`
		Libraries map[string][]json.RawMessage `json:"libraries"`
	}
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if list.Total != 1 || len(list.Libraries["phosphor"]) != 1 {
		t.Errorf("unexpected listing %s", text)
	}

	text, _ = callText(t, session, ToolComponentsSearch, map[string]any{"query": "click"})
	if !strings.Contains(text, `"count":1`) {
		t.Errorf("unexpected component search %s", text)
	}
}

func TestConcurrentToolCalls(t *testing.T) {
	session := connect(t, newTestServer(t))

	var wg sync.WaitGroup
	errs := make(chan string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
				Name:      ToolIconsFindSimilar,
				Arguments: map[string]any{"name": "usr", "limit": 3},
			})
			if err != nil {
				errs <- err.Error()
				return
			}
			if res.IsError {
				errs <- "tool error"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent call failed: %s", e)
	}
}

func TestHTTPHandler(t *testing.T) {
	s := newTestServer(t)
	httpServer := httptest.NewServer(s.Handler())
	defer httpServer.Close()

	ctx := context.Background()
	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "http-client"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.StreamableClientTransport{Endpoint: httpServer.URL}, nil)
	if err != nil {
		t.Fatalf("connect over HTTP failed: %v", err)
	}
	defer session.Close()

	text, isErr := callText(t, session, ToolIconsCheck, map[string]any{"name": "house"})
	if isErr || !strings.Contains(text, `"library":"phosphor"`) {
		t.Errorf("unexpected response over HTTP: %s", text)
	}
}

func TestErrorResultWrapsForeignErrors(t *testing.T) {
	res := errorResult(context.Canceled)

	text := res.Content[0].(*mcpsdk.TextContent).Text
	if !res.IsError || !strings.HasPrefix(text, "internal error: ") {
		t.Errorf("unexpected result %+v", res)
	}
}
