// Gmajulia renders a Julia set by iterating p ← p e1 p + c over vectors of
// the plane.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync/atomic"
	"time"

	"dasa.cc/gma/config"
	"dasa.cc/gma/logger"

	"go.uber.org/zap"
)

var (
	flagConfig  = flag.String("config", "", "path to a yaml config file")
	flagWidth   = flag.Int("w", 0, "image width, overrides the config")
	flagHeight  = flag.Int("h", 0, "image height, overrides the config")
	flagZoom    = flag.Float64("zoom", 0, "plane units per pixel, overrides the config")
	flagIter    = flag.Int("iter", 0, "iteration limit, overrides the config")
	flagDenoise = flag.Bool("denoise", false, "apply a 3x3 median filter")
	flagOut     = flag.String("o", "", "output file, overrides the config")
)

func applyFlags(cfg *config.JuliaConfig) {
	if *flagWidth > 0 {
		cfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Height = *flagHeight
	}
	if *flagZoom > 0 {
		cfg.Zoom = *flagZoom
	}
	if *flagIter > 0 {
		cfg.MaxIter = *flagIter
	}
	if *flagDenoise {
		cfg.Denoise = true
	}
	if *flagOut != "" {
		cfg.Output = *flagOut
	}
}

// monitor logs the share of completed work each second until done closes.
func monitor(total uint64, done <-chan struct{}) *uint64 {
	var progress uint64
	epoch := time.Now()
	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-done:
				logger.Info("completed", zap.Duration("elapsed", time.Since(epoch)))
				return
			case <-tick.C:
				complete := float64(atomic.LoadUint64(&progress)) / float64(total)
				if complete == 0 {
					continue
				}
				since := time.Since(epoch)
				remaining := time.Duration(float64(since)/complete) - since
				logger.Info("rendering",
					zap.String("complete", fmt.Sprintf("%.0f%%", complete*100)),
					zap.Duration("remaining", remaining.Round(time.Second)))
			}
		}
	}()
	return &progress
}

func saveImage(m image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, m); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func run() error {
	flag.Parse()
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	applyFlags(&cfg.Julia)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}
	defer logger.Sync()

	jc := cfg.Julia
	logger.Info("rendering julia set",
		zap.Int("width", jc.Width), zap.Int("height", jc.Height),
		zap.Float64s("c", jc.C[:]), zap.Int("supersample", jc.Supersample))

	done := make(chan struct{})
	progress := monitor(uint64(jc.Height*jc.Supersample), done)
	var m image.Image = julia(jc, progress)
	close(done)

	if jc.Denoise {
		if m, err = denoise(m, 3); err != nil {
			return err
		}
	}
	if err := saveImage(m, jc.Output); err != nil {
		return err
	}
	logger.Info("saved", zap.String("path", jc.Output))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gmajulia:", err)
		os.Exit(1)
	}
}
