package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options holds the settings a user may change without rebuilding. The shape
// of the burst itself (count, duration, palette) is fixed in config.go.
type Options struct {
	// Seed for the particle generator. Zero picks a time based seed.
	Seed uint64 `yaml:"seed"`

	// Debug enables log output and the on-screen stats line.
	Debug bool `yaml:"debug"`

	Sound SoundOptions `yaml:"sound"`
}

// SoundOptions controls the pop played when the burst starts.
type SoundOptions struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 ~ 1.0
	File    string  `yaml:"file"`   // optional .wav/.mp3/.flac, empty = synthesized pop
}

// Default returns the options used when no config file or flag says otherwise.
func Default() *Options {
	return &Options{
		Sound: SoundOptions{
			Enabled: true,
			Volume:  DefaultVolume,
		},
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/confetti/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// Load reads a YAML options file on top of base. Keys missing from the file
// keep the value they have in base; base itself is not modified.
func Load(path string, base *Options) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	opts := *base
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &opts, nil
}

// Validate checks that the values are usable.
func (o *Options) Validate() error {
	if o.Sound.Volume < 0 || o.Sound.Volume > 1 {
		return fmt.Errorf("sound volume must be within [0, 1], got %.2f", o.Sound.Volume)
	}
	if o.Sound.File != "" {
		switch filepath.Ext(o.Sound.File) {
		case ".wav", ".WAV", ".mp3", ".MP3", ".flac", ".FLAC":
		default:
			return fmt.Errorf("unsupported sound file type: %q", o.Sound.File)
		}
	}
	return nil
}
