// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ik5/audiodicer/dicer"
)

// Output backends for play mode.
const (
	BackendOto  = "oto"
	BackendBeep = "beep"
)

var (
	ErrNoInput        = errors.New("no input file")
	ErrUnknownBackend = errors.New("unknown playback backend")
)

// Config holds the CLI configuration. Load fills it from the environment,
// BindFlags lets command line flags override that.
type Config struct {
	Input  string
	Output string

	// SampleRate converts the input at load time; 0 keeps the file's rate.
	SampleRate int
	Duration   time.Duration // render length
	Latency    time.Duration // device buffer

	SliceMillis   int
	OverlapMillis int
	CrossFade     string
	Interpolation string
	Speed         float64
	Volume        float64
	Pan           float64
	PanLaw        bool
	Seed          uint64 // 0 picks a random seed

	Backend string
	Verbose bool
}

// Load reads configuration from DICER_* environment variables.
func Load() Config {
	return Config{
		Input:  envStr("DICER_INPUT", ""),
		Output: envStr("DICER_OUTPUT", "diced.wav"),

		SampleRate: envInt("DICER_SAMPLE_RATE", 0),
		Duration:   time.Duration(envInt("DICER_DURATION", 30)) * time.Second,
		Latency:    time.Duration(envInt("DICER_LATENCY_MS", 100)) * time.Millisecond,

		SliceMillis:   envInt("DICER_SLICE_MS", 500),
		OverlapMillis: envInt("DICER_OVERLAP_MS", 50),
		CrossFade:     envStr("DICER_CROSSFADE", "linear"),
		Interpolation: envStr("DICER_INTERPOLATION", "linear"),
		Speed:         envFloat("DICER_SPEED", 1.0),
		Volume:        envFloat("DICER_VOLUME", 1.0),
		Pan:           envFloat("DICER_PAN", 0),
		PanLaw:        envBool("DICER_PAN_LAW", false),
		Seed:          uint64(envInt("DICER_SEED", 0)),

		Backend: envStr("DICER_BACKEND", BackendOto),
		Verbose: envBool("DICER_VERBOSE", false),
	}
}

// BindFlags registers a flag for every setting, defaulting to the current
// values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "input audio file (wav, aiff, mp3, ogg)")
	fs.StringVar(&c.Output, "out", c.Output, "render: output wav file")
	fs.IntVar(&c.SampleRate, "rate", c.SampleRate, "convert input to this sample rate, 0 keeps it")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "render: length of the output")
	fs.DurationVar(&c.Latency, "latency", c.Latency, "play: device buffer length (beep backend)")
	fs.IntVar(&c.SliceMillis, "slice", c.SliceMillis, "slice length in milliseconds")
	fs.IntVar(&c.OverlapMillis, "overlap", c.OverlapMillis, "crossfade length in milliseconds")
	fs.StringVar(&c.CrossFade, "crossfade", c.CrossFade, "crossfade curve: none, linear or sine")
	fs.StringVar(&c.Interpolation, "interp", c.Interpolation, "interpolation: linear or cubic")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "playback speed, 0.25 to 4")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "output volume, 0 to 1")
	fs.Float64Var(&c.Pan, "pan", c.Pan, "stereo pan, -1 to 1")
	fs.BoolVar(&c.PanLaw, "pan-law", c.PanLaw, "apply pan to the output")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random one")
	fs.StringVar(&c.Backend, "backend", c.Backend, "play: oto or beep")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log configuration changes")
}

// Validate checks what can be checked before the input is decoded.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.Backend != BackendOto && c.Backend != BackendBeep {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := dicer.ParseCrossFadeMode(c.CrossFade); err != nil {
		return err
	}
	if _, err := dicer.ParseInterpolation(c.Interpolation); err != nil {
		return err
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("negative sample rate %d", c.SampleRate)
	}
	return nil
}

// Frames converts milliseconds to frames at sampleRate.
func Frames(millis, sampleRate int) int {
	return millis * sampleRate / 1000
}

// EngineOptions turns the configuration into engine options for audio at
// sampleRate. Speed, volume and pan are applied through the setters once
// the audio is loaded.
func (c Config) EngineOptions(sampleRate int) ([]dicer.Option, error) {
	mode, err := dicer.ParseCrossFadeMode(c.CrossFade)
	if err != nil {
		return nil, err
	}
	interp, err := dicer.ParseInterpolation(c.Interpolation)
	if err != nil {
		return nil, err
	}

	opts := []dicer.Option{
		dicer.WithSliceSize(Frames(c.SliceMillis, sampleRate)),
		dicer.WithOverlap(Frames(c.OverlapMillis, sampleRate)),
		dicer.WithCrossFadeMode(mode),
		dicer.WithInterpolation(interp),
		dicer.WithPanLaw(c.PanLaw),
	}
	if c.Seed != 0 {
		opts = append(opts, dicer.WithSeed(c.Seed))
	}
	return opts, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
