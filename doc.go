// Package framefx renders keyframed video effects onto single frames.
//
// # Overview
//
// A caller supplies a source frame, an ordered effect stack and a playhead
// time. The compositor applies every enabled effect in stack order to a
// private copy of the frame and returns the result. Effects cover color
// correction, geometric transforms, transitions, stylization and chroma-key
// matting.
//
// # Quick Start
//
//	import "github.com/gogpu/framefx"
//
//	src := framefx.FromImage(img)
//
//	stack := framefx.Stack{
//		framefx.NewEffect(framefx.KindBrightness).With("value", framefx.Number(20)),
//		framefx.NewEffect(framefx.KindFade).WithKeyframes("opacity",
//			framefx.Keyframe{Time: 0, Value: framefx.Number(0), Easing: framefx.EaseInOut},
//			framefx.Keyframe{Time: 1, Value: framefx.Number(1)},
//		),
//	}
//
//	out, err := framefx.Render(src, stack, 0.5)
//	if err != nil {
//		return err
//	}
//	_ = out.SavePNG("frame.png")
//
// # Parameters
//
// Every parameter has a default and a valid range. Missing parameters use
// their default, out-of-range numbers are clamped, and static values of the
// wrong type fall back to the default with a warning. Only a keyframe series
// holding a value of the wrong type is an error (ErrParamType).
//
// # Draws and blend modes
//
// fade, dissolve and wipe composite the frame onto a backdrop, transparent
// unless WithBackdrop supplies one. A blend-mode effect sets the mode and
// opacity of the next draw only. If no draw follows, the frame is drawn
// once more at the end of the stack so the blend mode still takes effect.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees, positive turns clockwise on screen
//
// # Concurrency
//
// Render is synchronous and safe for concurrent use. RenderSequence renders
// many playhead times in parallel on a worker pool.
package framefx
