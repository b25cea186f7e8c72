package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Catalog != DefaultCatalog {
		t.Fatalf("Catalog = %q, want %q", f.Catalog, DefaultCatalog)
	}
	if f.Pending != DefaultPending {
		t.Fatalf("Pending = %q, want %q", f.Pending, DefaultPending)
	}
	if f.ProgressEvery != DefaultProgressEvery {
		t.Fatalf("ProgressEvery = %d, want %d", f.ProgressEvery, DefaultProgressEvery)
	}
	if f.Dictionary != "" || f.LockFile != "" {
		t.Fatalf("Dictionary/LockFile = %q/%q, want empty", f.Dictionary, f.LockFile)
	}
	if f.Path() != "" {
		t.Fatalf("Path() = %q, want empty", f.Path())
	}
}

func TestLoadDefaultsAndValidation(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "lock_file: i18ntools.lock\nprogress_every: 25\n")

		f, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if f.Catalog != DefaultCatalog {
			t.Fatalf("Catalog = %q, want %q", f.Catalog, DefaultCatalog)
		}
		if f.LockFile != "i18ntools.lock" {
			t.Fatalf("LockFile = %q, want %q", f.LockFile, "i18ntools.lock")
		}
		if f.ProgressEvery != 25 {
			t.Fatalf("ProgressEvery = %d, want 25", f.ProgressEvery)
		}
		if f.Path() != filepath.Join(dir, FileName) {
			t.Fatalf("Path() = %q", f.Path())
		}
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")
		f, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if f.Pending != DefaultPending {
			t.Fatalf("Pending = %q, want %q", f.Pending, DefaultPending)
		}
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative interval", "progress_every: -5\n", "progress_every"},
		{"unknown key", "catalgo: en.json\n", "catalgo"},
		{"bad yaml", "catalog: [\n", "parsing"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tc.content)

			_, err := Load(dir)
			if err == nil {
				t.Fatalf("Load() error = nil, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Load() error = %q, want substring %q", err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), FileName) {
				t.Fatalf("Load() error = %q, want file name", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "shared", "phrases.yaml")

	f := Default()
	f.Dictionary = abs
	f.LockFile = "i18ntools.lock"

	p, err := f.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if want := filepath.Join(dir, "src", "i18n", "patches", "en.json"); p.Catalog != want {
		t.Fatalf("Catalog = %q, want %q", p.Catalog, want)
	}
	if want := filepath.Join(dir, DefaultPending); p.Pending != want {
		t.Fatalf("Pending = %q, want %q", p.Pending, want)
	}
	if p.Dictionary != abs {
		t.Fatalf("Dictionary = %q, want %q", p.Dictionary, abs)
	}
	if want := filepath.Join(dir, "i18ntools.lock"); p.LockFile != want {
		t.Fatalf("LockFile = %q, want %q", p.LockFile, want)
	}
	if p.ProgressEvery != DefaultProgressEvery {
		t.Fatalf("ProgressEvery = %d", p.ProgressEvery)
	}

	f.LockFile = ""
	p, _ = f.Resolve(dir)
	if p.LockFile != "" {
		t.Fatalf("disabled LockFile resolved to %q", p.LockFile)
	}
}

func TestResolveRejectsOverlappingFiles(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "src", "i18n", "patches", "en.json")

	tests := []struct {
		name    string
		edit    func(f *File)
		wantErr string
	}{
		{"pending over catalog", func(f *File) { f.Pending = "./src/i18n/patches/en.json" }, "same file"},
		{"absolute pending over catalog", func(f *File) { f.Pending = abs }, "same file"},
		{"lock over catalog", func(f *File) { f.LockFile = "src/i18n/patches/en.json" }, "lock_file"},
		{"lock over pending", func(f *File) { f.LockFile = DefaultPending }, "lock_file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Default()
			tc.edit(f)

			_, err := f.Resolve(dir)
			if err == nil {
				t.Fatalf("Resolve() error = nil, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Resolve() error = %q, want substring %q", err, tc.wantErr)
			}
		})
	}

	// The same settings read from the file load fine and fail on Resolve.
	writeConfig(t, dir, "catalog: a.json\npending: ./a.json\n")
	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, err := f.Resolve(dir); err == nil {
		t.Fatal("Resolve() error = nil for catalog == pending")
	}
}
