// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/framekit/imui/font/gofont"
	"github.com/framekit/imui/internal/gallery"
	"github.com/framekit/imui/internal/scenario"
	"github.com/framekit/imui/paint"
	"github.com/framekit/imui/paint/raster"
	"github.com/framekit/imui/paint/record"
	"github.com/framekit/imui/ui"
)

//go:embed demo.yaml
var demoScenario []byte

type renderOptions struct {
	scenario string
	theme    string
	out      string
	all      string
	size     string
	scale    float64
	ops      bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay a scenario through the gallery and save the frames",
		Long: `Replay a scenario through the gallery and save the last frame as a PNG
image. Without --scenario the built-in demo is replayed.

With --ops the painting calls of the last frame are printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(opts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.scenario, "scenario", "s", "", "scenario YAML file")
	f.StringVarP(&opts.theme, "theme", "t", "", "theme preset or YAML file, overriding the scenario's preset")
	f.StringVarP(&opts.out, "out", "o", "frame.png", "output file for the last frame")
	f.StringVar(&opts.all, "all", "", "also save every frame using this pattern, for example frame-%03d.png")
	f.StringVar(&opts.size, "size", "", "window size WxH, overriding the scenario's size")
	f.Float64Var(&opts.scale, "scale", 1, "scale factor of the saved images")
	f.BoolVar(&opts.ops, "ops", false, "print the painting calls instead of rasterizing")
	return cmd
}

func render(opts renderOptions, stdout io.Writer) error {
	if opts.scale <= 0 {
		return fmt.Errorf("invalid --scale %v", opts.scale)
	}
	if opts.all != "" && !strings.Contains(opts.all, "%") {
		return fmt.Errorf("--all pattern %q has no frame number verb", opts.all)
	}
	sc, err := loadScenario(opts.scenario)
	if err != nil {
		return err
	}
	if opts.size != "" {
		if sc.Size, err = parseSize(opts.size); err != nil {
			return err
		}
	}
	name := sc.Theme
	if opts.theme != "" {
		name = opts.theme
	}
	th, err := loadTheme(name)
	if err != nil {
		return err
	}

	bounds := image.Rectangle{Max: sc.Size}
	s := ui.NewSession(th)
	g := gallery.New()
	last := len(sc.Frames) - 1

	var surf paint.Surface
	var reset func()
	var done func(frame int) error
	if opts.ops {
		rec := record.New(bounds, 8, 16)
		surf, reset = rec, rec.Reset
		done = func(frame int) error {
			if frame != last {
				return nil
			}
			for _, op := range rec.Ops() {
				if _, err := fmt.Fprintln(stdout, op); err != nil {
					return err
				}
			}
			return nil
		}
	} else {
		c := raster.New(image.NewRGBA(bounds), gofont.Collection())
		surf, reset = c, c.Reset
		done = func(frame int) error {
			if err := c.Err(); err != nil {
				logger.Printf("frame %d: %v", frame, err)
			}
			if opts.all != "" {
				if err := writePNG(fmt.Sprintf(opts.all, frame), c.Image(), opts.scale); err != nil {
					return err
				}
			}
			if frame == last {
				return writePNG(opts.out, c.Image(), opts.scale)
			}
			return nil
		}
	}

	frame := 0
	layout := func() {
		reset()
		for _, e := range g.Layout(s, bounds) {
			logger.Printf("frame %d: %s", frame, e)
		}
		frame++
	}
	return sc.Run(s, surf, layout, done)
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Decode(demoScenario)
	}
	return scenario.Load(path)
}

// parseSize parses a size of the form WxH.
func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err := errors.Join(err1, err2); err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q: empty", s)
	}
	return image.Pt(w, h), nil
}

func writePNG(path string, img *image.RGBA, scale float64) error {
	var src image.Image = img
	if scale != 1 {
		b := img.Bounds()
		w := max(int(float64(b.Dx())*scale+.5), 1)
		h := max(int(float64(b.Dy())*scale+.5), 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		src = dst
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, src); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	logger.Printf("wrote %s", path)
	return f.Close()
}
