package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("sqlite backend is accepted", func(t *testing.T) {
		cfg := Config{Backend: BackendSQLite, DataDir: "/tmp/data"}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty backend rejected", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); !errors.Is(err, ErrBackendEmpty) {
			t.Fatalf("expected ErrBackendEmpty, got %v", err)
		}
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		cfg := Config{Backend: "postgres"}
		if err := cfg.Validate(); !errors.Is(err, ErrBackendUnknown) {
			t.Fatalf("expected ErrBackendUnknown, got %v", err)
		}
	})

	t.Run("empty data dir is allowed", func(t *testing.T) {
		cfg := Config{Backend: BackendSQLite}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})
}
