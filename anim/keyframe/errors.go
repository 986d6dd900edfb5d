package keyframe

import "errors"

var (
	// ErrNoTime is returned when a keyframe has no numeric time element.
	ErrNoTime = errors.New("keyframe: no time element")
	// ErrNotNumeric is returned when a value slot does not hold a number.
	ErrNotNumeric = errors.New("keyframe: value is not numeric")
	// ErrUnknownFlag is returned for a trailing string outside the flag vocabulary.
	ErrUnknownFlag = errors.New("keyframe: unknown flag")
	// ErrEmptyTrack is returned when a track holds no keyframes.
	ErrEmptyTrack = errors.New("keyframe: empty track")
	// ErrPointDefinition is returned when a track is still a named point-definition reference.
	ErrPointDefinition = errors.New("keyframe: unresolved point definition")
	// ErrShapeMismatch is returned when keyframes that must be compared differ in value arity.
	ErrShapeMismatch = errors.New("keyframe: value arity mismatch")
	// ErrInvalidTrack is returned for a track that is neither simple nor complex.
	ErrInvalidTrack = errors.New("keyframe: malformed track")
)
