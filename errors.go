package framefx

import "errors"

// Structural errors returned by Render. Parameter problems never surface as
// errors; they degrade to defaults instead.
var (
	// ErrInvalidFrame is returned when a frame is nil, has non-positive
	// dimensions, or its pixel slice is shorter than Width*Height*4.
	ErrInvalidFrame = errors.New("framefx: invalid frame")

	// ErrDimensionMismatch is returned when two frames that must share
	// dimensions (source and backdrop) do not.
	ErrDimensionMismatch = errors.New("framefx: frame dimensions do not match")

	// ErrParamType is returned when a keyframe series holds a value of the
	// wrong type for its parameter, e.g. a string in a numeric series.
	ErrParamType = errors.New("framefx: keyframe value has wrong type for parameter")

	// ErrUnknownName is returned by the Parse functions for unrecognized names.
	ErrUnknownName = errors.New("framefx: unknown name")
)
