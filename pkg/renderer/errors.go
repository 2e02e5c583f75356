package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrInvalidFrameSize = errors.New("renderer: frame width and height must be positive")
	ErrInvalidFOV       = errors.New("renderer: field of view must be in (0, pi)")
	ErrInvalidDepth     = errors.New("renderer: max depth must not be negative")
	ErrPixelOutOfBounds = errors.New("renderer: pixel outside the frame")
)
