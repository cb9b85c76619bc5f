package config

import (
	"flag"
	"fmt"
)

// Flags are the command-line overrides. Only flags that were actually passed
// are applied on top of the loaded options.
type Flags struct {
	ConfigPath   string
	Seed         uint64
	Debug        bool
	Mute         bool
	Volume       float64
	SoundFile    string
	SaveSettings bool

	set map[string]bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string) (*Flags, error) {
	f := &Flags{set: map[string]bool{}}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.ConfigPath, "config", "", "path to a YAML options file (default: user config dir)")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for the burst (0 = time based)")
	fs.BoolVar(&f.Debug, "debug", false, "log to stderr and show frame stats")
	fs.BoolVar(&f.Mute, "mute", false, "do not play the pop sound")
	fs.Float64Var(&f.Volume, "volume", DefaultVolume, "pop sound volume (0-1)")
	fs.StringVar(&f.SoundFile, "sound", "", "custom pop sound (.wav, .mp3 or .flac)")
	fs.BoolVar(&f.SaveSettings, "save-settings", false, "remember the effective volume and mute state")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

// IsSet reports whether the named flag was passed explicitly.
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}

// Apply overlays the explicitly passed flags on o.
func (f *Flags) Apply(o *Options) error {
	if f.IsSet("seed") {
		o.Seed = f.Seed
	}
	if f.IsSet("debug") {
		o.Debug = f.Debug
	}
	if f.IsSet("mute") {
		o.Sound.Enabled = !f.Mute
	}
	if f.IsSet("volume") {
		o.Sound.Volume = f.Volume
	}
	if f.IsSet("sound") {
		o.Sound.File = f.SoundFile
	}
	return o.Validate()
}
