package framefx

import (
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/framefx/internal/image"
)

// Frame is a raster frame of 8-bit RGBA pixels with straight
// (non-premultiplied) alpha, stored row-major with no padding.
//
// Frame implements image.Image.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // len >= Width*Height*4
}

// NewFrame creates a transparent frame. Negative dimensions are treated as zero.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FrameFromData wraps existing RGBA data without copying.
func FrameFromData(data []uint8, width, height int) (*Frame, error) {
	f := &Frame{Width: width, Height: height, Pix: data}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate reports whether f can be rendered.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidFrame)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if f.Width > math.MaxInt/4/f.Height {
		return fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidFrame, f.Width, f.Height)
	}
	if need := f.Width * f.Height * 4; len(f.Pix) < need {
		return fmt.Errorf("%w: %d bytes of pixel data, need %d", ErrInvalidFrame, len(f.Pix), need)
	}
	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// Pixel returns the channels at (x, y), or zeros if out of bounds.
func (f *Frame) Pixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0, 0, 0, 0
	}
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// SetPixel sets the channels at (x, y). Out-of-bounds writes are ignored.
func (f *Frame) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, a
}

// Fill sets every pixel to the given color.
func (f *Frame) Fill(r, g, b, a uint8) {
	for i := 0; i+3 < len(f.Pix); i += 4 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, a
	}
}

// Equal reports whether two frames have the same dimensions and pixels.
func (f *Frame) Equal(o *Frame) bool {
	if f.Width != o.Width || f.Height != o.Height {
		return false
	}
	n := f.Width * f.Height * 4
	return string(f.Pix[:n]) == string(o.Pix[:n])
}

// ToImage converts the frame to an image.NRGBA. The pixels are copied.
func (f *Frame) ToImage() *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}

// FromImage creates a frame from any image, converting to straight alpha.
func FromImage(img stdimage.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	dst := &stdimage.NRGBA{Pix: f.Pix, Stride: f.Width * 4, Rect: stdimage.Rect(0, 0, f.Width, f.Height)}
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return f
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(file, f.ToImage()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	r, g, b, a := f.Pixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, f.Width, f.Height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

// buf wraps the frame's pixels as an internal buffer without copying.
// The frame must be valid.
func (f *Frame) buf() *image.ImageBuf {
	b, _ := image.FromRaw(f.Pix, f.Width, f.Height)
	return b
}

// frameFromBuf copies a buffer into a new frame.
func frameFromBuf(b *image.ImageBuf) *Frame {
	f := NewFrame(b.Width(), b.Height())
	copy(f.Pix, b.Data())
	return f
}
