// Command meander draws Greek key border patterns to SVG and PNG.
//
// Usage:
//
//	meander rect   [--size N] [--width N] [--height N] [shared flags]
//	meander circle [--pattern-count N] [--radius R] [shared flags]
//
// Shared flags: --stroke-width, --stroke-color, --stroke-opacity,
// --border-margin, --file, --config, --scale, --no-png, -v.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/meander"
	"github.com/gogpu/meander/config"
	"github.com/gogpu/meander/raster"
	"github.com/gogpu/meander/svg"
)

const usage = `usage: meander <rect|circle> [flags]

Run "meander <rect|circle> -h" for the flags of each pattern.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the command-line settings that are not pattern parameters.
type options struct {
	preset  string
	scale   float64
	noPNG   bool
	verbose bool
}

// run executes one invocation and returns the process exit code:
// 0 on success, 1 on generation or I/O failure, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	kind := config.Kind(args[0])
	params, err := config.Default(kind)
	if err != nil {
		fmt.Fprintf(stderr, "meander: unknown pattern %q\n%s", args[0], usage)
		return 2
	}

	fs := flag.NewFlagSet("meander "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	apply := bindFlags(fs, kind, params, &opts)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "meander: unexpected arguments %v\n", fs.Args())
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	meander.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer meander.SetLogger(nil)

	if opts.preset != "" {
		params, err = config.Load(opts.preset)
		if err != nil {
			fmt.Fprintf(stderr, "meander: %v\n", err)
			return 1
		}
		if params.Kind != kind {
			fmt.Fprintf(stderr, "meander: preset %s is a %s pattern, not %s\n", opts.preset, params.Kind, kind)
			return 2
		}
	}

	// Explicit flags override the preset.
	fs.Visit(func(f *flag.Flag) {
		if fn, ok := apply[f.Name]; ok {
			fn(&params)
		}
	})

	if err := generate(params, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "meander: %v\n", err)
		return 1
	}
	return 0
}

// bindFlags registers the flags for kind with defaults taken from def.
// The returned map applies a set flag's value to a Params.
func bindFlags(fs *flag.FlagSet, kind config.Kind, def config.Params, opts *options) map[string]func(*config.Params) {
	apply := make(map[string]func(*config.Params))

	strokeWidth := fs.Float64("stroke-width", def.Stroke.Width, "stroke width")
	apply["stroke-width"] = func(p *config.Params) { p.Stroke.Width = *strokeWidth }
	strokeColor := fs.String("stroke-color", def.Stroke.Color, "stroke color, hex or SVG color name")
	apply["stroke-color"] = func(p *config.Params) { p.Stroke.Color = *strokeColor }
	strokeOpacity := fs.Float64("stroke-opacity", def.Stroke.Opacity, "stroke opacity in [0, 1]")
	apply["stroke-opacity"] = func(p *config.Params) { p.Stroke.Opacity = *strokeOpacity }
	margin := fs.Float64("border-margin", def.BorderMargin, "empty margin around the outer frame")
	apply["border-margin"] = func(p *config.Params) { p.BorderMargin = *margin }
	file := fs.String("file", def.File, "output basename; .svg and .png are appended")
	apply["file"] = func(p *config.Params) { p.File = *file }

	switch kind {
	case config.KindRect:
		size := fs.Int("size", def.Rect.Size, "key unit length")
		apply["size"] = func(p *config.Params) { p.Rect.Size = *size }
		width := fs.Int("width", def.Rect.Width, "motif repeats across")
		apply["width"] = func(p *config.Params) { p.Rect.Width = *width }
		height := fs.Int("height", def.Rect.Height, "motif repeats down")
		apply["height"] = func(p *config.Params) { p.Rect.Height = *height }
	case config.KindCircle:
		count := fs.Int("pattern-count", def.Circle.PatternCount, "motif repeats around the circle (at least 4)")
		apply["pattern-count"] = func(p *config.Params) { p.Circle.PatternCount = *count }
		radius := fs.Float64("radius", def.Circle.Radius, "outer frame radius")
		apply["radius"] = func(p *config.Params) { p.Circle.Radius = *radius }
	}

	fs.StringVar(&opts.preset, "config", "", "TOML or YAML preset; explicit flags take precedence")
	fs.Float64Var(&opts.scale, "scale", 1, "PNG pixels per canvas unit")
	fs.BoolVar(&opts.noPNG, "no-png", false, "write only the SVG document")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	return apply
}

// generate builds the pattern and writes the SVG and, unless disabled,
// the PNG. Any failure aborts the run.
func generate(params config.Params, opts options, stdout io.Writer) error {
	pat, err := params.Pattern()
	if err != nil {
		return err
	}

	pr := message.NewPrinter(language.English)
	w, h := pat.CanvasSize()

	name, err := svg.Save(params.File, pat, params.Stroke)
	if err != nil {
		return err
	}
	pr.Fprintf(stdout, "wrote %s (%v × %v, %d segments)\n", name, w, h, pat.Path().LineCount())

	if opts.noPNG {
		return nil
	}
	name, err = raster.SavePNG(params.File, pat, params.Stroke, raster.WithScale(opts.scale))
	if err != nil {
		return err
	}
	pw, ph := raster.PixelSize(w, h, opts.scale)
	pr.Fprintf(stdout, "wrote %s (%d × %d px)\n", name, pw, ph)
	return nil
}
