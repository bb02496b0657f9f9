// Package chromakey removes a key color from a frame and refines the
// resulting matte.
//
// Keying runs as a fixed sequence of stages over the alpha channel:
// extraction, edge refinement, choke, feather and cleanup. A stage whose
// parameter sits at its default is skipped entirely.
package chromakey

import (
	"math"

	"github.com/gogpu/framefx/internal/color"
	"github.com/gogpu/framefx/internal/filter"
	"github.com/gogpu/framefx/internal/image"
)

// maxDistance is the Euclidean distance between black and white in RGB.
var maxDistance = 255 * math.Sqrt(3)

// Params configures a keying pass. Distances and strengths are normalized to
// [0,1]; morphology radii are in pixels.
type Params struct {
	Key color.ColorU8

	Similarity       float64 // [0,1], 0 keys nothing
	Smoothness       float64 // [0,1], width of the soft edge above Similarity
	SpillSuppression float64 // [0,1]

	EdgeThickness float64 // px, positive grows the matte, negative shrinks it
	Choke         float64 // px, positive shrinks the matte, negative grows it
	EdgeFeather   float64 // px, alpha blur sigma
	MatteCleanup  float64 // [0,1]
}

// DefaultParams returns the parameters of a freshly added chroma key:
// pure green key, nothing removed yet.
func DefaultParams() Params {
	return Params{
		Key:        color.ColorU8{R: 0, G: 255, B: 0, A: 255},
		Smoothness: 0.1,
	}
}

// Apply keys buf in place.
func Apply(buf *image.ImageBuf, p Params) {
	if buf == nil {
		return
	}

	if p.Similarity > 0 {
		extract(buf, p)
	}
	if r := int(math.Round(p.EdgeThickness)); r != 0 {
		(&filter.MorphFilter{Radius: r}).Apply(buf, buf)
	}
	if r := int(math.Round(p.Choke)); r != 0 {
		(&filter.MorphFilter{Radius: -r}).Apply(buf, buf)
	}
	if p.EdgeFeather > 0 {
		filter.NewAlphaBlurFilter(p.EdgeFeather).Apply(buf, buf)
	}
	if p.MatteCleanup > 0 {
		cleanup(buf, p.MatteCleanup)
	}
}

// Distance returns the normalized RGB distance between two colors in [0,1].
func Distance(a, b color.ColorU8) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr+dg*dg+db*db) / maxDistance
}

// extract removes pixels close to the key color and softens those within
// the smoothness band. Partially keyed pixels are pulled toward luma by the
// spill strength.
func extract(buf *image.ImageBuf, p Params) {
	w, h := buf.Bounds()
	for y := range h {
		row := buf.RowBytes(y)
		for x := range w {
			i := x * image.BytesPerPixel
			px := color.ColorU8{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			d := Distance(px, p.Key)

			if d <= p.Similarity {
				row[i+3] = 0
				continue
			}
			if p.Smoothness <= 0 || d >= p.Similarity+p.Smoothness {
				continue
			}

			kept := (d - p.Similarity) / p.Smoothness
			row[i+3] = round8(float64(px.A) * kept)

			if p.SpillSuppression > 0 {
				amt := p.SpillSuppression * (1 - kept)
				luma := 0.2989*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
				row[i+0] = round8(float64(px.R) + (luma-float64(px.R))*amt)
				row[i+1] = round8(float64(px.G) + (luma-float64(px.G))*amt)
				row[i+2] = round8(float64(px.B) + (luma-float64(px.B))*amt)
			}
		}
	}
}

// cleanup drops faint alpha and opens the matte to remove isolated specks.
func cleanup(buf *image.ImageBuf, strength float64) {
	filter.ThresholdAlpha(buf, strength*128)
	radius := max(1, int(math.Round(2*strength)))
	filter.OpenAlpha(buf, radius)
}

func round8(v float64) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
