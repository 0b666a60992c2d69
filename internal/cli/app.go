/*
Package cli implements the icon-hub-mcp commands.

Every command loads the configuration (built-in defaults when the file is
missing), loads the library manifests and the component catalog, and answers
through the same query service the MCP server uses.
*/
package cli

import (
	"fmt"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
	"github.com/khanglvm/icon-hub-mcp/internal/components"
	"github.com/khanglvm/icon-hub-mcp/internal/config"
	"github.com/khanglvm/icon-hub-mcp/internal/query"
	"github.com/khanglvm/icon-hub-mcp/internal/search"
	"github.com/khanglvm/icon-hub-mcp/internal/storage"
)

// GlobalOptions holds the persistent root flags.
type GlobalOptions struct {
	// ConfigPath overrides ~/.icon-hub-mcp.json.
	ConfigPath string

	// DataDir overrides the configured manifest directory.
	DataDir string
}

// loadConfig reads the configuration and applies flag overrides.
func (o *GlobalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}
	return cfg, nil
}

// configPath returns the effective config file location.
func (o *GlobalOptions) configPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	return config.GetDefaultConfigPath()
}

// newService loads every configured library and the component catalog.
// A library that fails to load is served empty.
func newService(cfg *config.Config, tracker query.Tracker) (*query.Service, error) {
	manifests := catalog.Resolve(catalog.LoadAll(cfg.Sources()))
	idx := search.Build(manifests...)

	svc, err := query.NewService(query.Options{
		Index:      idx,
		Components: components.LoadDir(config.ExpandHome(cfg.ComponentsDir)),
		Libraries:  cfg.Libraries,
		Tracker:    tracker,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build query service: %w", err)
	}
	return svc, nil
}

// openStorage returns the history database, or a disabled storage when
// history is turned off.
func openStorage(cfg *config.Config) *storage.SQLiteStorage {
	if !cfg.HistoryEnabled() {
		return storage.NewDisabledStorage()
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return storage.NewDisabledStorage()
	}
	return storage.NewStorage(path)
}

// loadService is the common prologue of the one-shot query commands.
func (o *GlobalOptions) loadService() (*query.Service, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return newService(cfg, nil)
}
