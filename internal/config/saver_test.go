package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "test.json")

	data := []byte(`{"test": "data"}`)
	if err := atomicWrite(testPath, data); err != nil {
		t.Fatalf("atomicWrite failed: %v", err)
	}

	got, err := os.ReadFile(testPath)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("expected %s, got %s", data, got)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temp file should not remain after atomic write, found %d entries", len(entries))
	}
}

func TestBackupConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "test.json")

	original := []byte(`{"original": "data"}`)
	if err := os.WriteFile(testPath, original, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := backupConfig(testPath); err != nil {
		t.Fatalf("backupConfig failed: %v", err)
	}

	backup, err := os.ReadFile(testPath + ".bak")
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(backup) != string(original) {
		t.Errorf("backup content mismatch: expected %s, got %s", original, backup)
	}
}

func TestBackupConfigNonExistent(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "nonexistent.json")

	if err := backupConfig(testPath); err != nil {
		t.Errorf("backupConfig should not fail for non-existent file: %v", err)
	}
	if _, err := os.Stat(testPath + ".bak"); !os.IsNotExist(err) {
		t.Error("no backup should be written for a missing file")
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid config",
			data: `{"libraries": [{"id": "heroicons", "file": "heroicons.json"}]}`,
		},
		{
			name: "empty libraries list",
			data: `{"libraries": []}`,
		},
		{
			name:    "missing libraries field",
			data:    `{"settings": {}}`,
			wantErr: "missing 'libraries' field",
		},
		{
			name:    "duplicate id",
			data:    `{"libraries": [{"id": "a", "file": "a.json"}, {"id": "a", "file": "b.json"}]}`,
			wantErr: "duplicate id",
		},
		{
			name:    "library without file",
			data:    `{"libraries": [{"id": "a"}]}`,
			wantErr: "empty file",
		},
		{
			name:    "invalid JSON",
			data:    `{invalid}`,
			wantErr: "invalid character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateJSON([]byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveCreatesBackup(t *testing.T) {
	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "config.json")

	cfg1 := NewConfig()
	if err := Save(cfg1, testPath); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	cfg2 := NewConfig()
	cfg2.Libraries = append(cfg2.Libraries, &LibraryConfig{ID: "feather", File: "feather.json"})
	if err := Save(cfg2, testPath); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	backup, err := os.ReadFile(testPath + ".bak")
	if err != nil {
		t.Fatalf("backup file not created: %v", err)
	}
	if strings.Contains(string(backup), "feather") {
		t.Error("backup should hold the first config")
	}

	current, err := LoadFrom(testPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if current.Library("feather") == nil {
		t.Error("current config should hold the second save")
	}
}

func TestSaveValidatesBeforeWrite(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "config.json")

	cfg := NewConfig()
	cfg.Libraries = append(cfg.Libraries, &LibraryConfig{File: "nameless.json"})

	if err := Save(cfg, testPath); err == nil {
		t.Fatal("expected validation error for library without id")
	}

	if _, err := os.Stat(testPath); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestSaveConcurrentWrites(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "config.json")

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cfg := NewConfig()
			cfg.Settings.HistoryRetentionDays = n + 1
			errs <- Save(cfg, testPath)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent save failed: %v", err)
		}
	}

	if _, err := LoadFrom(testPath); err != nil {
		t.Errorf("config should be valid after concurrent writes: %v", err)
	}
}

func TestAcquireSaveLockTimeout(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "config.json")

	unlock, err := acquireSaveLock(testPath, time.Second)
	if err != nil {
		t.Fatalf("first lock failed: %v", err)
	}
	defer unlock()

	if _, err := acquireSaveLock(testPath, 100*time.Millisecond); err == nil {
		t.Error("second lock should time out while the first is held")
	}
}
