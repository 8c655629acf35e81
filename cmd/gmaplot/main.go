// Gmaplot draws a vector of the plane and its images under repeated rotation
// by a fixed rotor.
package main

import (
	"flag"
	"fmt"
	"os"

	"dasa.cc/gma/config"
	"dasa.cc/gma/g2"
	"dasa.cc/gma/logger"
	"dasa.cc/gma/plot"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var (
	flagConfig = flag.String("config", "", "path to a yaml config file")
	flagX      = flag.Float64("x", 3, "e1 coordinate of the vector")
	flagY      = flag.Float64("y", 0, "e2 coordinate of the vector")
	flagAngle  = flag.Float64("angle", 45, "rotation per step in degrees")
	flagSteps  = flag.Int("steps", 0, "number of rotations, overrides the config")
	flagPlanes = flag.Bool("planes", false, "draw the plane between successive images")
	flagOut    = flag.String("o", "", "output file, overrides the config")
)

// render plots v rotated n times by angle, with the basis vectors for
// reference.
func render(cfg config.PlotConfig, v g2.VectorE2, angle float64, planes bool) (*plot.Plotter, error) {
	R := g2.OneSpinor().RotorFromAngle(angle)
	p := plot.New(fmt.Sprintf("R = %s", R.Precision(3)), cfg.Extent)
	if err := p.AddVector("e1", g2.E1); err != nil {
		return nil, err
	}
	if err := p.AddVector("e2", g2.E2); err != nil {
		return nil, err
	}

	vs := plot.Sweep(v, angle, cfg.Steps)
	for k, u := range vs {
		label := fmt.Sprintf("R^%d v", k)
		if k == 0 {
			label = "v = " + u.String()
		}
		if err := p.AddVector(label, u); err != nil {
			return nil, err
		}
		if planes && k > 0 {
			B := g2.FromVector(vs[k-1]).Ext(g2.FromVector(u))
			logger.Debug("plane", zap.Int("step", k), zap.Stringer("bivector", B))
			if err := p.AddPlane(B.String(), g2.NewVector(0, 0), vs[k-1], u); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func run() error {
	flag.Parse()
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	if *flagSteps > 0 {
		cfg.Plot.Steps = *flagSteps
	}
	if *flagOut != "" {
		cfg.Plot.Output = *flagOut
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}
	defer logger.Sync()

	v := g2.NewVector(*flagX, *flagY)
	p, err := render(cfg.Plot, v, *flagAngle*plot.Degree, *flagPlanes)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(cfg.Plot.Size)*vg.Inch, cfg.Plot.Output); err != nil {
		return err
	}
	logger.Info("saved", zap.String("path", cfg.Plot.Output), zap.Stringer("v", v), zap.Int("steps", cfg.Plot.Steps))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gmaplot:", err)
		os.Exit(1)
	}
}
