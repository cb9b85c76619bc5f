package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/confetti/internal/config"
)

func openTestStore(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	store, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return store
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if p.Volume != config.DefaultVolume {
		t.Errorf("Volume: got %v, want %v", p.Volume, config.DefaultVolume)
	}
	if p.Muted {
		t.Error("Muted: got true, want false")
	}
}

func TestNilStoreIsMemoryOnly(t *testing.T) {
	m := NewManager(nil)
	m.SetVolume(0.2)
	m.SetMuted(true)

	if err := m.Save(); err != nil {
		t.Errorf("Save() with nil store: %v", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load() with nil store: %v", err)
	}
	// Load without a store resets to defaults.
	if m.Preferences().Volume != config.DefaultVolume {
		t.Errorf("Volume after Load: got %v", m.Preferences().Volume)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t, "confetti_test_settings")

	m := NewManager(store)
	m.SetVolume(0.35)
	m.SetMuted(true)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewManager(store)
	p := reloaded.Preferences()
	if p.Volume != 0.35 {
		t.Errorf("Volume: got %v, want 0.35", p.Volume)
	}
	if !p.Muted {
		t.Error("Muted: got false, want true")
	}
}

func TestLoadCorruptData(t *testing.T) {
	store := openTestStore(t, "confetti_test_corrupt")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("volume: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := &Manager{store: store, prefs: DefaultPreferences()}
	if err := m.Load(); err == nil {
		t.Error("expected error for corrupt settings")
	}
	if m.Preferences().Volume != config.DefaultVolume {
		t.Errorf("corrupt settings should fall back to defaults, got %v", m.Preferences().Volume)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	tests := []struct{ in, want float64 }{{-0.5, 0}, {0.4, 0.4}, {1.5, 1}}
	m := NewManager(nil)
	for _, tt := range tests {
		m.SetVolume(tt.in)
		if got := m.Preferences().Volume; got != tt.want {
			t.Errorf("SetVolume(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyAndRemember(t *testing.T) {
	opts := config.Default()
	p := &Preferences{Volume: 0.1, Muted: true}
	p.Apply(opts)
	if opts.Sound.Volume != 0.1 || opts.Sound.Enabled {
		t.Errorf("Apply: got %+v", opts.Sound)
	}

	opts.Sound.Enabled = true
	opts.Sound.Volume = 0.9
	m := NewManager(nil)
	m.Remember(opts)
	if m.Preferences().Volume != 0.9 || m.Preferences().Muted {
		t.Errorf("Remember: got %+v", m.Preferences())
	}
}
