// Command fxrender applies an effect stack to an image and writes the
// result as PNG, either for one playhead time or for a range of frames.
//
//	fxrender -input in.jpg -stack fx.yaml -time 1.5 -output out.png
//	fxrender -input in.png -stack fx.yaml -from 0 -to 2 -fps 24 -output frame-%04d.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdimage "image"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/framefx"
	"github.com/gogpu/framefx/internal/color"
	"github.com/gogpu/framefx/internal/stackfile"
)

// logLevelEnv overrides -log-level when set.
const logLevelEnv = "FXRENDER_LOG_LEVEL"

func main() {
	var (
		input    = flag.String("input", "", "source image (png, jpeg, bmp, tiff or webp)")
		stack    = flag.String("stack", "", "YAML effect stack")
		at       = flag.Float64("time", 0, "playhead time in seconds for a single frame")
		from     = flag.Float64("from", 0, "range start in seconds")
		to       = flag.Float64("to", math.NaN(), "range end in seconds; enables range mode")
		fps      = flag.Float64("fps", 24, "frames per second in range mode")
		output   = flag.String("output", "out.png", "output file; a printf pattern such as frame-%04d.png in range mode")
		workers  = flag.Int("workers", 0, "render goroutines in range mode (0 = GOMAXPROCS)")
		seed     = flag.Uint64("seed", 0, "base grain seed")
		backdrop = flag.String("backdrop", "", "backdrop image path or hex color (default transparent)")
		level    = flag.String("log-level", "warn", "log level: debug, info, warn or error")
	)
	flag.Parse()

	if env := os.Getenv(logLevelEnv); env != "" {
		*level = env
	}
	lvl, err := parseLevel(*level)
	if err != nil {
		log.Fatalf("fxrender: %v", err)
	}
	framefx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := loadFrame(*input)
	if err != nil {
		log.Fatalf("fxrender: %v", err)
	}

	var fx framefx.Stack
	if *stack != "" {
		if fx, err = stackfile.Load(*stack); err != nil {
			log.Fatalf("fxrender: %v", err)
		}
	}

	opts := []framefx.Option{framefx.WithGrainSeed(*seed), framefx.WithWorkers(*workers)}
	if *backdrop != "" {
		bg, err := loadBackdrop(*backdrop, src.Width, src.Height)
		if err != nil {
			log.Fatalf("fxrender: %v", err)
		}
		opts = append(opts, framefx.WithBackdrop(bg))
	}
	c := framefx.NewCompositor(opts...)

	if math.IsNaN(*to) {
		out, err := c.Render(src, fx, *at)
		if err != nil {
			log.Fatalf("fxrender: %v", err)
		}
		if err := out.SavePNG(*output); err != nil {
			log.Fatalf("fxrender: %v", err)
		}
		log.Printf("Rendered %s at t=%g (%dx%d)", *output, *at, out.Width, out.Height)
		return
	}

	times, err := frameTimes(*from, *to, *fps)
	if err != nil {
		log.Fatalf("fxrender: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames, err := c.RenderSequence(ctx, src, fx, times)
	if err != nil {
		log.Fatalf("fxrender: %v", err)
	}
	for i, f := range frames {
		name := outputName(*output, i)
		if err := f.SavePNG(name); err != nil {
			log.Fatalf("fxrender: %v", err)
		}
	}
	log.Printf("Rendered %d frames from t=%g to t=%g", len(frames), *from, *to)
}

func loadFrame(path string) (*framefx.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return framefx.FromImage(img), nil
}

// loadBackdrop reads a backdrop image, or builds a solid one when arg is a
// hex color.
func loadBackdrop(arg string, w, h int) (*framefx.Frame, error) {
	if c, err := color.ParseHex(arg); err == nil {
		bg := framefx.NewFrame(w, h)
		bg.Fill(c.R, c.G, c.B, c.A)
		return bg, nil
	}
	return loadFrame(arg)
}

// frameTimes returns the playhead times of every frame in [from, to] at fps.
func frameTimes(from, to, fps float64) ([]float64, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return nil, fmt.Errorf("fps must be positive, got %g", fps)
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsInf(to, 0) || to < from {
		return nil, fmt.Errorf("invalid range [%g, %g]", from, to)
	}

	n := int(math.Floor((to-from)*fps+1e-9)) + 1
	times := make([]float64, n)
	for i := range times {
		times[i] = from + float64(i)/fps
	}
	return times, nil
}

// outputName expands a printf pattern with the frame index. Patterns
// without a verb get the index inserted before the extension.
func outputName(pattern string, i int) string {
	if strings.Contains(pattern, "%") {
		return fmt.Sprintf(pattern, i)
	}
	if dot := strings.LastIndexByte(pattern, '.'); dot > 0 {
		return fmt.Sprintf("%s-%04d%s", pattern[:dot], i, pattern[dot:])
	}
	return fmt.Sprintf("%s-%04d", pattern, i)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.New("unknown log level " + s)
	}
	return l, nil
}
