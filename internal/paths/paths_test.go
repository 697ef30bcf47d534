package paths

import (
	"path/filepath"
	"testing"
)

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		got, err := ResolveConfigDir("/flag/config")
		if err != nil {
			t.Fatalf("ResolveConfigDir: %v", err)
		}
		if got != "/flag/config" {
			t.Errorf("got %q, want /flag/config", got)
		}
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		got, err := ResolveConfigDir("")
		if err != nil {
			t.Fatalf("ResolveConfigDir: %v", err)
		}
		if got != "/env/config" {
			t.Errorf("got %q, want /env/config", got)
		}
	})

	t.Run("default is under working directory", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got, err := ResolveConfigDir("")
		if err != nil {
			t.Fatalf("ResolveConfigDir: %v", err)
		}
		if filepath.Base(got) != DefaultConfigDirName {
			t.Errorf("got %q, want a %s directory", got, DefaultConfigDirName)
		}
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("relative/config")
		if err != nil {
			t.Fatalf("ResolveConfigDir: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("got %q, want absolute path", got)
		}
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over all", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		got, err := ResolveDataDir("/flag/data", "/yaml/data")
		if err != nil {
			t.Fatalf("ResolveDataDir: %v", err)
		}
		if got != "/flag/data" {
			t.Errorf("got %q, want /flag/data", got)
		}
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		got, err := ResolveDataDir("", "/yaml/data")
		if err != nil {
			t.Fatalf("ResolveDataDir: %v", err)
		}
		if got != "/yaml/data" {
			t.Errorf("got %q, want /yaml/data", got)
		}
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		got, err := ResolveDataDir("", "")
		if err != nil {
			t.Fatalf("ResolveDataDir: %v", err)
		}
		if got != "/env/data" {
			t.Errorf("got %q, want /env/data", got)
		}
	})

	t.Run("default is under working directory", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		got, err := ResolveDataDir("", "")
		if err != nil {
			t.Fatalf("ResolveDataDir: %v", err)
		}
		if filepath.Base(got) != DefaultDataDirName {
			t.Errorf("got %q, want a %s directory", got, DefaultDataDirName)
		}
	})
}
