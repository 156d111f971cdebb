package cubeengine

import "errors"

// Sentinel errors for the cubeengine package.
var (
	// Construction errors
	ErrInvalidDimension = errors.New("cubeengine: invalid cube dimension")

	// Parsing errors
	ErrInvalidMoveSyntax = errors.New("cubeengine: invalid move notation")

	// Solver errors
	ErrNotSupportedDimension = errors.New("cubeengine: dimension not supported by solver")

	// Scramble errors
	ErrInvalidScrambleLength = errors.New("cubeengine: negative scramble length")

	// History errors
	ErrHistoryIndex    = errors.New("cubeengine: history index out of range")
	ErrHistoryDisabled = errors.New("cubeengine: move history is disabled")
)
