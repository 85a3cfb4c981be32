package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/skeleton/cmd/skeleton/internal/scene"
	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/platform"
	"github.com/go-drift/skeleton/pkg/skeleton"
	"github.com/go-drift/skeleton/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene with its loaders to PNG",
		Long: `Render a scene file to a PNG image with loaders shown on every node and
list marked "loading: true".

The sweep configuration is read from skeleton.yaml next to the scene unless
--config is given. The animation is frozen at the time given by -t.

Flags:
  -o, --output FILE   PNG file to write (default: scene name with .png)
  -t, --time DUR      Point in the sweep to render, e.g. 300ms (default: 0)
  --dark              Render with the dark appearance
  --config FILE       Sweep configuration file
  --no-loaders        Render the scene content without loaders`,
		Usage: "skeleton render <scene.yaml> [-o out.png] [-t 300ms] [--dark]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scene     string
	output    string
	at        time.Duration
	dark      bool
	config    string
	noLoaders bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-o", "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", arg)
			}
			opts.output = args[i+1]
			i++
		case "-t", "--time":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a duration", arg)
			}
			d, err := time.ParseDuration(args[i+1])
			if err != nil || d < 0 {
				return opts, fmt.Errorf("invalid %s value %q", arg, args[i+1])
			}
			opts.at = d
			i++
		case "--dark":
			opts.dark = true
		case "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.config = args[i+1]
			i++
		case "--no-loaders":
			opts.noLoaders = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.scene != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.scene = arg
		}
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("scene file is required")
	}
	if opts.output == "" {
		opts.output = strings.TrimSuffix(opts.scene, filepath.Ext(opts.scene)) + ".png"
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: skeleton render <scene.yaml> [-o out.png] [-t 300ms] [--dark]", err)
	}
	if err := renderScene(opts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", opts.output)
	return nil
}

func loadSweepConfig(opts renderOptions) (skeleton.Config, error) {
	if opts.config != "" {
		return skeleton.LoadConfig(opts.config)
	}
	return skeleton.LoadConfigOptional(filepath.Dir(opts.scene))
}

// renderScene draws one frame of the scene and writes it as PNG.
func renderScene(opts renderOptions) error {
	s, err := scene.Load(opts.scene)
	if err != nil {
		return err
	}
	cfg, err := loadSweepConfig(opts)
	if err != nil {
		return err
	}

	brightness := theme.BrightnessLight
	if opts.dark {
		brightness = theme.BrightnessDark
	}

	// A stopped clock makes the same offset always capture the same frame.
	clk := animation.NewManualClock(time.Unix(0, 0))
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	appearance := platform.NewAppearanceService(brightness)
	registry, err := skeleton.NewRegistry(cfg, appearance)
	if err != nil {
		return err
	}
	defer registry.Close()

	if !opts.noLoaders {
		s.Show(registry)
		defer s.Hide(registry)
	}
	s.Root.Layout()
	clk.Advance(opts.at)
	animation.StepTickers()

	canvas := graphics.NewRasterCanvas(s.Size)
	s.Root.Paint(canvas, brightness)

	return writePNG(opts.output, canvas)
}

func writePNG(path string, canvas *graphics.RasterCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.LoaderError{Op: "render.writePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return &errors.LoaderError{Op: "render.writePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.LoaderError{Op: "render.writePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	return nil
}
