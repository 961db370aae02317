package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/log"
)

// Process exit codes.
const (
	exitOK     = 0
	exitDecode = 1
	exitRender = 2
	exitUsage  = 3
)

type options struct {
	MaxSize     *int   `short:"m" long:"max-size" value-name:"N" description:"The max size of the preview in the screen, in ascii pixels (default: 100)"`
	Color       bool   `short:"c" long:"color" description:"Preview the image with color (true color terminals only)"`
	OmitAspect  bool   `short:"o" long:"omit-ascii-distortion" description:"Omit the filter that compensates for tall character cells"`
	NoAntialias bool   `short:"d" long:"disable-antialiasing" description:"Resample with nearest-neighbor instead of bilinear filtering"`
	Ramp        string `short:"r" long:"ramp" value-name:"GLYPHS" description:"Density ramp, from emptiest to densest glyph"`
	Snapshot    string `short:"s" long:"snapshot" value-name:"FILE.png" description:"Also write a PNG picture of the rendered text"`
	Font        string `long:"font" value-name:"FILE.ttf" description:"TrueType font for snapshots (default: embedded Go Mono)"`
	Config      string `long:"config" value-name:"FILE.yaml" description:"YAML file with default settings"`
	Verbose     bool   `short:"v" long:"verbose" description:"Log debug information to stderr"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"The file to preview" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program behind main, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "img2ascii"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log.SetLevel(log.LevelInfo)
	if opts.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	var fc fileConfig
	if opts.Config != "" {
		var err error
		if fc, err = loadFileConfig(opts.Config); err != nil {
			fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
			return exitUsage
		}
		log.Debug("loaded config", "path", opts.Config)
	}

	cfg, fontPath, err := buildConfig(&opts, fc)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}

	if cfg.Color {
		if f, ok := stdout.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			log.Warn("color output requested but stdout is not a terminal")
		}
	}

	img, err := imageutil.LoadImage(opts.Args.File)
	if err != nil {
		log.Debug("decode failed", "error", err)
		fmt.Fprintf(stderr, "Error reading %s file\n", opts.Args.File)
		return exitDecode
	}
	if img.Empty() {
		fmt.Fprintf(stderr, "Error reading %s file: %v\n", opts.Args.File, img2ascii.ErrEmptyImage)
		return exitDecode
	}

	intermediate, final := img2ascii.ScaledSize(img.Width(), img.Height(), cfg)
	log.Debug("rendering",
		"file", opts.Args.File,
		"source", fmt.Sprintf("%dx%d", img.Width(), img.Height()),
		"corrected", fmt.Sprintf("%dx%d", intermediate.X, intermediate.Y),
		"scaled", fmt.Sprintf("%dx%d", final.X, final.Y),
		"antialias", cfg.Antialias,
		"color", cfg.Color)

	if err := img2ascii.Paint(stdout, img, cfg); err != nil {
		log.Debug("render failed", "error", err)
		fmt.Fprintln(stderr, "Error rendering the image")
		return exitRender
	}

	if opts.Snapshot != "" {
		fb, err := img2ascii.LoadFontBitmaps(fontPath, cfg.Ramp)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading font: %v\n", err)
			return exitRender
		}
		if err := img2ascii.SaveSnapshot(opts.Snapshot, img, cfg, fb, 1); err != nil {
			fmt.Fprintf(stderr, "Error writing snapshot: %v\n", err)
			return exitRender
		}
		log.Debug("snapshot written", "path", opts.Snapshot, "font", fb.Name())
	}

	return exitOK
}
