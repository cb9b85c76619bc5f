package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/confetti/internal/config"
	"github.com/iburimskiy/confetti/internal/settings"
)

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	setupLogging(false)
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}

	setupLogging(true)
	if log.Writer() != os.Stderr {
		t.Errorf("Expected log output to be os.Stderr, got %v", log.Writer())
	}
}

func parseFlags(t *testing.T, args ...string) *config.Flags {
	t.Helper()
	f, err := config.ParseFlags("confetti", args)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	return f
}

func TestLoadOptionsLayering(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "seed: 5\nsound:\n  volume: 0.4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	prefs := &settings.Preferences{Volume: 0.9, Muted: true}
	opts, err := loadOptions(parseFlags(t, "-config", path, "-seed", "11"), prefs)
	if err != nil {
		t.Fatalf("loadOptions() error: %v", err)
	}

	// flag beats file
	if opts.Seed != 11 {
		t.Errorf("Seed: got %d, want 11", opts.Seed)
	}
	// file beats preferences
	if opts.Sound.Volume != 0.4 {
		t.Errorf("Volume: got %v, want 0.4", opts.Sound.Volume)
	}
	// preferences beat defaults
	if opts.Sound.Enabled {
		t.Error("Sound.Enabled: got true, want false from saved preferences")
	}
}

func TestLoadOptionsMissingDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	opts, err := loadOptions(parseFlags(t), settings.DefaultPreferences())
	if err != nil {
		t.Fatalf("loadOptions() error: %v", err)
	}
	if opts.Sound.Volume != config.DefaultVolume {
		t.Errorf("Volume: got %v, want default", opts.Sound.Volume)
	}
}

func TestLoadOptionsMissingExplicitConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadOptions(parseFlags(t, "-config", missing), settings.DefaultPreferences()); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoadOptionsInvalidFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := loadOptions(parseFlags(t, "-volume", "3"), settings.DefaultPreferences()); err == nil {
		t.Error("expected error for volume 3")
	}
}
