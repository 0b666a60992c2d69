package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanglvm/icon-hub-mcp/internal/history"
	"github.com/khanglvm/icon-hub-mcp/internal/mcp"
	"github.com/khanglvm/icon-hub-mcp/internal/version"
)

// NewServeCmd creates the 'serve' command for running the MCP server.
func NewServeCmd(opts *GlobalOptions) *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio or streamable HTTP)",
		Long: `Start the icon-hub-mcp server.

The server exposes these tools to AI clients:
  • icons_list, icons_check, icons_find_similar, icons_example, icons_search
  • components_list, components_get, components_search, components_example

By default MCP is spoken over stdio. With --http (or settings.httpAddr) the
server listens for streamable HTTP instead.`,
		Example: `  # Run directly
  icon-hub-mcp serve

  # Serve over HTTP
  icon-hub-mcp serve --http :8080

  # Add to Claude Code
  claude mcp add icon-hub -- icon-hub-mcp serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, httpAddr)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "Serve streamable HTTP on this address instead of stdio")

	return cmd
}

// runServe starts the MCP server with signal handling.
// Implements graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
func runServe(opts *GlobalOptions, httpAddr string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpAddr == "" && cfg.Settings != nil {
		httpAddr = cfg.Settings.HTTPAddr
	}

	store := openStorage(cfg)
	tracker := history.NewTracker(store)
	if err := store.Cleanup(time.Duration(cfg.RetentionDays()) * 24 * time.Hour); err != nil {
		log.Printf("Warning: history cleanup failed: %v", err)
	}

	svc, err := newService(cfg, tracker)
	if err != nil {
		tracker.Stop()
		store.Close()
		return err
	}
	v, _, _ := version.GetVersionComponents()
	server := mcp.NewServer(svc, v)

	cleanup := func() {
		tracker.Stop()
		if err := svc.Close(); err != nil {
			log.Printf("Warning: failed to close keyword index: %v", err)
		}
		if err := store.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		if httpAddr != "" {
			errChan <- server.RunHTTP(ctx, httpAddr)
			return
		}
		errChan <- server.Run(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v, shutting down gracefully...", sig)
		cancel()
		<-errChan
		log.Println("Shutdown complete")
		return nil

	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
