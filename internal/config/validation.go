package config

import (
	"fmt"
	"strings"
)

// Validate checks the libraries section: every library needs an id and a
// manifest file, and ids must be unique.
func Validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Libraries))
	for i, lib := range cfg.Libraries {
		if lib == nil {
			return fmt.Errorf("library #%d: empty entry", i)
		}
		if err := ValidateLibrary(lib); err != nil {
			return err
		}
		if seen[lib.ID] {
			return fmt.Errorf("library '%s': duplicate id", lib.ID)
		}
		seen[lib.ID] = true
	}
	return nil
}

// ValidateLibrary checks a single library entry.
func ValidateLibrary(lib *LibraryConfig) error {
	if strings.TrimSpace(lib.ID) == "" {
		return fmt.Errorf("library with file '%s': empty id", lib.File)
	}
	if strings.ContainsAny(lib.ID, "/ ") {
		return fmt.Errorf("library '%s': id must not contain '/' or spaces", lib.ID)
	}
	if strings.TrimSpace(lib.File) == "" {
		return fmt.Errorf("library '%s': empty file", lib.ID)
	}
	return nil
}
