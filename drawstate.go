package framefx

import (
	"fmt"

	"github.com/gogpu/framefx/internal/image"
)

// BlendMode selects how a draw combines the frame with the backdrop.
type BlendMode uint8

// Blend modes.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendAdd
)

var blendModeNames = [...]string{
	BlendNormal:   "normal",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendOverlay:  "overlay",
	BlendAdd:      "add",
}

// String returns the lowercase name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// ParseBlendMode resolves a blend mode name, ignoring case.
// "lighter" is accepted as a synonym for add.
func ParseBlendMode(name string) (BlendMode, error) {
	key := foldName(name)
	if key == "lighter" {
		return BlendAdd, nil
	}
	for i, n := range blendModeNames {
		if n == key {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("%w: blend mode %q", ErrUnknownName, name)
}

func (m BlendMode) internal() image.BlendMode {
	switch m {
	case BlendMultiply:
		return image.BlendMultiply
	case BlendScreen:
		return image.BlendScreen
	case BlendOverlay:
		return image.BlendOverlay
	case BlendAdd:
		return image.BlendAdd
	default:
		return image.BlendNormal
	}
}

// WipeDirection is the direction a wipe reveals the frame in.
type WipeDirection uint8

// Wipe directions.
const (
	WipeLeftToRight WipeDirection = iota
	WipeRightToLeft
	WipeTopToBottom
	WipeBottomToTop
)

var wipeNames = [...]string{
	WipeLeftToRight: "left-to-right",
	WipeRightToLeft: "right-to-left",
	WipeTopToBottom: "top-to-bottom",
	WipeBottomToTop: "bottom-to-top",
}

// String returns the hyphenated name of the direction.
func (d WipeDirection) String() string {
	if int(d) < len(wipeNames) {
		return wipeNames[d]
	}
	return "unknown"
}

// ParseWipeDirection resolves a wipe direction name. Matching ignores case
// and separators.
func ParseWipeDirection(name string) (WipeDirection, error) {
	key := foldName(name)
	for i, n := range wipeNames {
		if foldName(n) == key {
			return WipeDirection(i), nil
		}
	}
	return WipeLeftToRight, fmt.Errorf("%w: wipe direction %q", ErrUnknownName, name)
}

// reveal returns the part of a w×h frame shown at progress in [0,1].
func (d WipeDirection) reveal(progress float64, w, h int) image.Rect {
	pw := int(progress*float64(w) + 0.5)
	ph := int(progress*float64(h) + 0.5)
	switch d {
	case WipeRightToLeft:
		return image.Rect{X: w - pw, Width: pw, Height: h}
	case WipeTopToBottom:
		return image.Rect{Width: w, Height: ph}
	case WipeBottomToTop:
		return image.Rect{Y: h - ph, Width: w, Height: ph}
	default:
		return image.Rect{Width: pw, Height: h}
	}
}

// DrawState is the blend configuration applied by the next draw (fade,
// dissolve or wipe). A blend-mode effect replaces it and the next draw
// consumes it, resetting it to DefaultDrawState.
type DrawState struct {
	Mode    BlendMode
	Opacity float64 // [0,1]
}

// DefaultDrawState is normal blending at full opacity.
func DefaultDrawState() DrawState {
	return DrawState{Mode: BlendNormal, Opacity: 1}
}
