// SPDX-License-Identifier: EPL-2.0

// Command dicer re-sequences an audio file into randomly placed,
// crossfaded slices. It either renders a WAV file or plays live with
// keyboard control:
//
//	dicer render -in loop.wav -out diced.wav -duration 1m
//	dicer play -in loop.mp3 -slice 250 -overlap 40 -backend beep
//
// Every flag can also be set through a DICER_* environment variable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audiodicer"
	"github.com/ik5/audiodicer/dicer"
	"github.com/ik5/audiodicer/internal/config"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "usage: dicer render|play [flags] [input]\n\n")
		fs.PrintDefaults()
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dicer: ")

	cfg := config.Load()
	fs := flag.NewFlagSet("dicer", flag.ExitOnError)
	cfg.BindFlags(fs)
	fs.Usage = usage(fs)

	if len(os.Args) < 2 {
		fs.Usage()
		os.Exit(2)
	}
	mode := os.Args[1]
	if mode != "render" && mode != "play" {
		fs.Usage()
		os.Exit(2)
	}

	fs.Parse(os.Args[2:])
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	e, err := newEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if mode == "render" {
		err = render(e, cfg)
	} else {
		err = play(e, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// newEngine loads the input and starts an engine configured by cfg.
func newEngine(cfg config.Config) (*dicer.Engine, error) {
	buf, err := audiodicer.ReadFile(cfg.Input, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.EngineOptions(buf.SampleRate)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		opts = append(opts, dicer.WithLogger(log.Default()))
	}

	e := dicer.New(opts...)
	if err := e.LoadBuffer(buf); err != nil {
		return nil, err
	}
	if err := e.SetSpeed(cfg.Speed); err != nil {
		return nil, err
	}
	e.SetVolume(cfg.Volume)
	e.SetPan(cfg.Pan)

	if err := e.Start(); err != nil {
		return nil, err
	}

	if cfg.Verbose {
		log.Printf("%s: %d frames at %d Hz, slice %d overlap %d %s",
			cfg.Input, e.Frames(), e.SampleRate(), e.SliceSize(), e.Overlap(), e.CrossFadeMode())
	}
	return e, nil
}

func render(e *dicer.Engine, cfg config.Config) error {
	frames := int64(cfg.Duration.Seconds() * float64(e.SampleRate()))

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}

	if err := audiodicer.Render(e, out, frames); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Printf("wrote %d frames to %s", frames, cfg.Output)
	return nil
}

// interrupted receives SIGINT and SIGTERM.
func interrupted() <-chan os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	return sig
}
