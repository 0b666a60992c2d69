package config

import (
	"fmt"
	"io/fs"
)

// PermissionError is returned when the config file or its directory cannot
// be read or written.
type PermissionError struct {
	Path    string
	Op      string // "read" or "write"
	Fix     string // platform-specific command that restores access
	Details string
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("permission denied (cannot %s config): %s\n", e.Op, e.Path)
	if e.Details != "" {
		msg += e.Details + "\n"
	}
	msg += "💡 Fix: " + e.Fix
	return msg
}

// Is lets callers match with errors.Is(err, fs.ErrPermission).
func (e *PermissionError) Is(target error) bool {
	return target == fs.ErrPermission
}

// ConfigNotFoundError is returned when no config file exists at Path.
// The server treats it as "use built-in libraries".
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s\n\n💡 %s", e.Path, e.Hint)
}

// Is lets callers match with errors.Is(err, fs.ErrNotExist).
func (e *ConfigNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// InvalidConfigError is returned for unparsable JSON or a libraries section
// that fails validation.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %s\n", e.Path)
	if e.Message != "" {
		msg += e.Message + "\n"
	}
	if e.Hint != "" {
		msg += "💡 " + e.Hint
	}
	return msg
}
