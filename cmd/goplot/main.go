package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/canvas"
	"goplot/internal/formula"
	"goplot/internal/geom"
	"goplot/internal/plane"
	"goplot/internal/render"
	"goplot/internal/tui"
)

type config struct {
	expr     string
	scale    float64
	center   plane.Point
	labels   plane.LabelScale
	annotate string
	fit      bool
	png      string
	width    int
	height   int
	debug    string
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("goplot", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: goplot [flags] [expression in x]")
		fs.PrintDefaults()
	}
	fs.Float64Var(&cfg.scale, "scale", 0, "pixels per unit (default 10 in the terminal, 50 for -png)")
	fs.Float64Var(&cfg.center.X, "cx", 0, "x at the center of the view")
	fs.Float64Var(&cfg.center.Y, "cy", 0, "y at the center of the view")
	labels := fs.String("labels", "nice", "label scale: nice or ratio")
	fs.StringVar(&cfg.annotate, "annotate", "", "annotation file (.wkt, .csv, .geojson)")
	fs.BoolVar(&cfg.fit, "fit", false, "fit the view to the annotations")
	fs.StringVar(&cfg.png, "png", "", "write a PNG to this path instead of starting the terminal UI")
	fs.IntVar(&cfg.width, "width", 800, "PNG width in pixels")
	fs.IntVar(&cfg.height, "height", 600, "PNG height in pixels")
	fs.StringVar(&cfg.debug, "debug", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	ls, ok := plane.LabelScaleByName(*labels)
	if !ok {
		return cfg, fmt.Errorf("unknown label scale %q", *labels)
	}
	cfg.labels = ls
	switch fs.NArg() {
	case 0:
		cfg.expr = "sin(x)"
	case 1:
		cfg.expr = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected one expression, got %d: %s", fs.NArg(), strings.Join(fs.Args(), " "))
	}
	if cfg.fit && cfg.annotate == "" {
		return cfg, errors.New("-fit needs -annotate")
	}
	return cfg, nil
}

func exportPNG(cfg config) error {
	f, err := formula.Compile(cfg.expr)
	if err != nil {
		return err
	}
	scale := cfg.scale
	if scale == 0 {
		scale = 50
	}
	tr, err := plane.NewTransform(cfg.width, cfg.height, scale)
	if err != nil {
		return err
	}
	if err := tr.SetCenter(cfg.center); err != nil {
		return err
	}
	scene := render.Scene{Func: f.Eval, Grid: true, Labels: true}
	if cfg.annotate != "" {
		d, err := geom.Load(cfg.annotate)
		if err != nil {
			return err
		}
		scene.Lines = d.Segments()
		if cfg.fit {
			if err := geom.Fit(tr, d.BBox); err != nil {
				return err
			}
		}
	}
	rep, err := canvas.SavePNG(cfg.png, render.NewPlotter(tr, cfg.labels), scene)
	if err != nil {
		return err
	}
	log.Printf("wrote %s: %dx%d px, %d+%d gridlines, %d undefined columns, %d breaks",
		cfg.png, rep.View.Width, rep.View.Height, len(rep.Gridlines.X), len(rep.Gridlines.Y), rep.Gaps, rep.Breaks)
	return nil
}

func runTUI(cfg config) error {
	if cfg.debug != "" {
		f, err := tea.LogToFile(cfg.debug, "goplot")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// stray log output would corrupt the alt screen
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}
	m, err := tui.New(tui.Options{
		Expr:     cfg.expr,
		Scale:    cfg.scale,
		Center:   cfg.center,
		Labels:   cfg.labels,
		Annotate: cfg.annotate,
		Fit:      cfg.fit,
	})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func run(args []string, out io.Writer) error {
	cfg, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	if cfg.png != "" {
		return exportPNG(cfg)
	}
	return runTUI(cfg)
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
