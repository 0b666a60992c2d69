/*
Package config handles loading and saving icon-hub-mcp configuration.

Configuration is stored in ~/.icon-hub-mcp.json. A missing file is not an
error for the server: built-in defaults describe the two bundled libraries.

Schema:

	{
	  "dataDir": "~/.icon-hub-mcp/data",
	  "componentsDir": "~/.icon-hub-mcp/components",
	  "libraries": [
	    {
	      "id": "heroicons",
	      "file": "heroicons.json",
	      "install": "composer require wireui/heroicons",
	      "component": "x-heroicons::{variant}.{name}",
	      "defaultVariant": "outline"
	    }
	  ],
	  "settings": {
	    "historyDisabled": false,
	    "historyRetentionDays": 30,
	    "httpAddr": ""
	  }
	}
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khanglvm/icon-hub-mcp/internal/catalog"
)

const (
	configFileName  = ".icon-hub-mcp.json"
	homeDirName     = ".icon-hub-mcp"
	historyFileName = "history.db"
)

// Config represents the root configuration structure.
type Config struct {
	// DataDir holds the library manifests. "~" expands to the home directory.
	DataDir string `json:"dataDir,omitempty"`

	// ComponentsDir holds one JSON document per UI component.
	ComponentsDir string `json:"componentsDir,omitempty"`

	// Libraries lists the icon libraries in load order.
	Libraries []*LibraryConfig `json:"libraries"`

	// Settings contains global configuration options.
	Settings *Settings `json:"settings,omitempty"`
}

// LibraryConfig describes one icon library.
type LibraryConfig struct {
	// ID is the library identifier used in queries (e.g., "heroicons").
	ID string `json:"id"`

	// File is the manifest path, relative to DataDir unless absolute.
	File string `json:"file"`

	// Install is the command that adds the library to a project.
	Install string `json:"install,omitempty"`

	// Component is the Blade component template; {variant} and {name} are substituted.
	Component string `json:"component,omitempty"`

	// DefaultVariant is used by the component template when none is requested.
	DefaultVariant string `json:"defaultVariant,omitempty"`
}

// Settings contains global configuration options.
type Settings struct {
	// HistoryDisabled turns off the query history database.
	HistoryDisabled bool `json:"historyDisabled,omitempty"`

	// HistoryRetentionDays prunes history rows older than this on startup.
	HistoryRetentionDays int `json:"historyRetentionDays,omitempty"`

	// HistoryFile overrides the history database location.
	HistoryFile string `json:"historyFile,omitempty"`

	// HTTPAddr serves MCP over streamable HTTP instead of stdio when set.
	HTTPAddr string `json:"httpAddr,omitempty"`
}

// NewConfig creates a configuration with the built-in libraries.
func NewConfig() *Config {
	return &Config{
		DataDir:       filepath.Join("~", homeDirName, "data"),
		ComponentsDir: filepath.Join("~", homeDirName, "components"),
		Libraries: []*LibraryConfig{
			{
				ID:             catalog.Heroicons,
				File:           "heroicons.json",
				Install:        "composer require wireui/heroicons",
				Component:      "x-heroicons::{variant}.{name}",
				DefaultVariant: "outline",
			},
			{
				ID:             catalog.Phosphor,
				File:           "phosphor.json",
				Install:        "composer require wireui/phosphoricons",
				Component:      "x-phosphor.icons::{variant}.{name}",
				DefaultVariant: "regular",
			},
		},
		Settings: &Settings{
			HistoryRetentionDays: 30,
		},
	}
}

// GetDefaultConfigPath returns the path to ~/.icon-hub-mcp.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// GetHomeDir returns ~/.icon-hub-mcp, where the history database lives.
func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// Library returns the configuration of library id, or nil.
func (c *Config) Library(id string) *LibraryConfig {
	for _, lib := range c.Libraries {
		if lib.ID == id {
			return lib
		}
	}
	return nil
}

// LibraryIDs returns the configured library ids in load order.
func (c *Config) LibraryIDs() []string {
	ids := make([]string, 0, len(c.Libraries))
	for _, lib := range c.Libraries {
		ids = append(ids, lib.ID)
	}
	return ids
}

// Sources resolves the manifest location of every configured library.
func (c *Config) Sources() []catalog.Source {
	dataDir := ExpandHome(c.DataDir)
	sources := make([]catalog.Source, 0, len(c.Libraries))
	for _, lib := range c.Libraries {
		path := ExpandHome(lib.File)
		if !filepath.IsAbs(path) {
			path = filepath.Join(dataDir, path)
		}
		sources = append(sources, catalog.Source{Library: lib.ID, Path: path})
	}
	return sources
}

// RetentionDays returns the history retention, defaulting to 30 days.
func (c *Config) RetentionDays() int {
	if c.Settings == nil || c.Settings.HistoryRetentionDays <= 0 {
		return 30
	}
	return c.Settings.HistoryRetentionDays
}

// HistoryPath returns the history database location, by default
// ~/.icon-hub-mcp/history.db.
func (c *Config) HistoryPath() (string, error) {
	if c.Settings != nil && c.Settings.HistoryFile != "" {
		return ExpandHome(c.Settings.HistoryFile), nil
	}
	home, err := GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, historyFileName), nil
}

// HistoryEnabled reports whether query history should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.Settings == nil || !c.Settings.HistoryDisabled
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
