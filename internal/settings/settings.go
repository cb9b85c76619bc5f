// Package settings remembers the user's sound preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/confetti/internal/config"
)

// Preferences are the persisted sound choices.
type Preferences struct {
	Volume float64 `yaml:"volume"` // 0.0 ~ 1.0
	Muted  bool    `yaml:"muted"`
}

// DefaultPreferences returns the preferences of a first run.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Volume: config.DefaultVolume,
		Muted:  false,
	}
}

// Apply copies the preferences into the sound options.
func (p *Preferences) Apply(o *config.Options) {
	o.Sound.Volume = p.Volume
	o.Sound.Enabled = !p.Muted
}

const (
	settingsObject   = "settings"
	settingsProperty = "sound"
)

// Manager loads and saves Preferences through gdata. A Manager without a
// gdata backend keeps preferences in memory only.
type Manager struct {
	store *gdata.Manager
	prefs *Preferences
}

// Open creates a Manager backed by the per-user gdata directory. If the
// storage cannot be opened the Manager falls back to memory only.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{
		AppName: config.AppName,
	})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (preferences will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager creates a Manager and loads any saved preferences. A load
// failure is logged and leaves the defaults in place.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store: store,
		prefs: DefaultPreferences(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

// Load reads the saved preferences, keeping defaults when nothing is stored.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.prefs = DefaultPreferences()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)

	m.prefs = loaded
	log.Printf("[Settings] Loaded volume=%.2f muted=%v", loaded.Volume, loaded.Muted)
	return nil
}

// Save persists the current preferences. Without a backend it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Saved volume=%.2f muted=%v", m.prefs.Volume, m.prefs.Muted)
	return nil
}

func (m *Manager) Preferences() *Preferences { return m.prefs }

// SetVolume changes the in-memory volume, clamped to [0, 1]. Call Save to
// persist it.
func (m *Manager) SetVolume(volume float64) {
	m.prefs.Volume = clampVolume(volume)
}

func (m *Manager) SetMuted(muted bool) {
	m.prefs.Muted = muted
}

// Remember copies the effective sound options into the preferences.
func (m *Manager) Remember(o *config.Options) {
	m.SetVolume(o.Sound.Volume)
	m.SetMuted(!o.Sound.Enabled)
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
