package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/confetti/internal/confetti"
	"github.com/iburimskiy/confetti/internal/config"
	"github.com/iburimskiy/confetti/internal/game"
	"github.com/iburimskiy/confetti/internal/settings"
)

// setupLogging sends log output to stderr when debugging and drops it
// otherwise. A decorative overlay has nothing to say on a normal run.
func setupLogging(debug bool) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if debug {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// loadOptions layers the effective options: defaults, saved preferences,
// the config file, then explicit flags. A missing config file at the default
// location is fine; an explicitly named one must exist.
func loadOptions(flags *config.Flags, prefs *settings.Preferences) (*config.Options, error) {
	opts := config.Default()
	prefs.Apply(opts)

	path := flags.ConfigPath
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.Printf("[Main] Warning: %v", err)
		}
	}

	if path != "" {
		loaded, err := config.Load(path, opts)
		switch {
		case err == nil:
			log.Printf("[Main] Loaded config %s", path)
			opts = loaded
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	if err := flags.Apply(opts); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return opts, nil
}

// fatal reports a startup failure in a native dialog and exits.
func fatal(err error) {
	log.Printf("[Main] Fatal: %v", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); dlgErr != nil {
		log.Printf("[Main] Could not show error dialog: %v", dlgErr)
	}
	os.Exit(1)
}

func main() {
	flags, err := config.ParseFlags(config.AppName, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	setupLogging(flags.Debug)

	prefs := settings.Open()
	opts, err := loadOptions(flags, prefs.Preferences())
	if err != nil {
		fatal(err)
	}
	setupLogging(opts.Debug)

	if flags.SaveSettings {
		prefs.Remember(opts)
		if err := prefs.Save(); err != nil {
			log.Printf("[Main] Warning: %v", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	monitor := ebiten.Monitor()
	if monitor == nil {
		fatal(errors.New("could not get primary monitor"))
	}
	width, height := monitor.Size()
	if width <= 0 || height <= 0 {
		fatal(fmt.Errorf("primary monitor reports an unusable size %dx%d", width, height))
	}
	log.Printf("[Main] Monitor %q is %dx%d, seed %d", monitor.Name(), width, height, seed)

	sound, err := game.NewSound(opts.Sound, seed)
	if err != nil {
		log.Printf("[Main] Warning: %v (continuing without sound)", err)
	}

	sim := confetti.NewSimulation(confetti.NewRand(seed), confetti.SystemClock{}, float64(width), float64(height))
	overlay := game.NewOverlay(sim, game.OverlayConfig{
		Width:   width,
		Height:  height,
		Debug:   opts.Debug,
		OnStart: sound.Play,
		OnClose: func() {
			log.Printf("[Main] Closing overlay window")
		},
	})

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetTPS(config.FrameRate)

	err = ebiten.RunGameWithOptions(overlay, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(fmt.Errorf("overlay failed: %w", err))
	}
}
