package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
)

// saveLockTimeout bounds how long Save waits for a concurrent writer.
const saveLockTimeout = 5 * time.Second

// Save validates cfg and writes it to path. Writers of the same path are
// serialized through a sibling .lock file; the previous content is kept as
// path.bak and the new content replaces the file in a single rename.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := validateJSON(data); err != nil {
		return &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Check the libraries section and try again",
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := checkWritePermission(path); err != nil {
		return err
	}

	unlock, err := acquireSaveLock(path, saveLockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if err := backupConfig(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create backup: %v\n", err)
	}

	return atomicWrite(path, append(data, '\n'))
}

// acquireSaveLock polls a flock on path.lock until timeout.
func acquireSaveLock(path string, timeout time.Duration) (func(), error) {
	lockPath := path + ".lock"
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another process is writing the config (lock: %s)", lockPath)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// backupConfig copies path to path.bak. A missing file is not an error.
func backupConfig(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path+".bak", data, 0644)
}

// validateJSON round-trips data through Config and runs Validate on it.
func validateJSON(data []byte) error {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.Libraries == nil {
		return fmt.Errorf("missing 'libraries' field")
	}
	return Validate(&cfg)
}

// atomicWrite writes data to a temp file in the target directory, syncs it
// and renames it over path.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// checkWritePermission probes the directory and, when it exists, the file.
func checkWritePermission(path string) error {
	dir := filepath.Dir(path)

	probe, err := os.CreateTemp(dir, ".write-test-*")
	if err != nil {
		return &PermissionError{
			Path:    dir,
			Op:      "write",
			Fix:     getWritePermissionFix(dir),
			Details: "Cannot write to config directory",
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	switch {
	case err == nil:
		return f.Close()
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return &PermissionError{
			Path:    path,
			Op:      "write",
			Fix:     getWritePermissionFix(path),
			Details: "Config file is read-only",
		}
	}
}

func getWritePermissionFix(path string) string {
	if runtime.GOOS == "windows" {
		return fmt.Sprintf("Right-click %s → Properties → Security → Grant 'Write' permission", path)
	}
	return fmt.Sprintf("Run: chmod u+w %s", path)
}
