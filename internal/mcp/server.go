/*
Package mcp exposes the icon and component queries as MCP tools.

The server speaks MCP over stdio by default, or over streamable HTTP when an
address is given, and registers these tools:
  - icons_list: List icons by library and substring
  - icons_check: Check that an icon (and variant) exists
  - icons_find_similar: "Did you mean" suggestions for a name
  - icons_example: Markdown usage guide for one icon
  - icons_search: Keyword search over names, tags, aliases and categories
  - components_list, components_get, components_search, components_example:
    the UI component catalog

Tool responses are compact JSON text (markdown for icons_example). Invalid
requests and internal failures are tool errors whose text starts with
"invalid request:" or "internal error:".
*/
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/khanglvm/icon-hub-mcp/internal/query"
)

// ServerName is reported to clients during initialization.
const ServerName = "icon-hub-mcp"

// shutdownTimeout bounds how long the HTTP server drains connections.
const shutdownTimeout = 5 * time.Second

// Server is the icon-hub-mcp MCP server.
type Server struct {
	service *query.Service
	server  *mcpsdk.Server
}

// NewServer creates a server answering from svc.
func NewServer(svc *query.Service, version string) *Server {
	s := &Server{
		service: svc,
		server: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is cancelled or stdin is closed.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s.server
	}, nil)
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Serving MCP over HTTP on %s", addr)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
