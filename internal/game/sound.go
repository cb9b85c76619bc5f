package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/confetti/internal/config"
)

const sampleRate = beep.SampleRate(config.SampleRate)

// Sound plays the pop that accompanies the burst. A zero Sound is silent.
type Sound struct {
	buffer *beep.Buffer
	volume float64
}

// NewSound prepares the pop and opens the audio device. When the device is
// unavailable the returned Sound is silent and the error says why; the
// overlay still runs.
func NewSound(opts config.SoundOptions, seed uint64) (*Sound, error) {
	if !opts.Enabled {
		return &Sound{}, nil
	}

	var (
		buffer *beep.Buffer
		err    error
	)
	if opts.File != "" {
		buffer, err = loadBuffer(opts.File)
		if err != nil {
			log.Printf("[Sound] Warning: %v (using synthesized pop)", err)
		}
	}
	if buffer == nil {
		buffer = newBuffer(popStreamer(rand.New(rand.NewPCG(seed, seed+1)), sampleRate, config.PopLength))
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &Sound{}, fmt.Errorf("failed to init speaker: %w", err)
	}

	return &Sound{buffer: buffer, volume: opts.Volume}, nil
}

// Play starts the pop without blocking.
func (s *Sound) Play() {
	if s.buffer == nil {
		return
	}
	speaker.Play(withVolume(s.buffer.Streamer(0, s.buffer.Len()), s.volume))
}

func newBuffer(st beep.Streamer) *beep.Buffer {
	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(st)
	return buffer
}

// popStreamer synthesizes a short burst of low-passed noise with an
// exponential decay, ending after length.
func popStreamer(rng *rand.Rand, sr beep.SampleRate, length time.Duration) beep.Streamer {
	total := sr.N(length)
	decay := float64(total) / 6
	pos := 0
	low := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			white := rng.Float64()*2 - 1
			low += (white - low) * 0.35
			v := low * math.Exp(-float64(pos)/decay)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// withVolume scales st by a linear volume in [0, 1].
func withVolume(st beep.Streamer, volume float64) beep.Streamer {
	volume = clamp01(volume)
	if volume == 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(volume)}
}

// loadBuffer decodes a sound file by extension and resamples it to the
// speaker rate.
func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch filepath.Ext(path) {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	case ".flac", ".FLAC":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported sound file type: " + filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	var st beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		st = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	log.Printf("[Sound] Loaded %s (%d Hz)", path, format.SampleRate)
	return newBuffer(st), nil
}
