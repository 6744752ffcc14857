package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrGeneration is matched by every *GenerationError.
	ErrGeneration = errors.New("maze: generation failed")

	// ErrValidation marks an attempt whose entrance/exit pairs are not all
	// connected. It wraps the solver or connector cause.
	ErrValidation = errors.New("maze: validation failed")

	// ErrNotGenerated is returned by operations that need a grid.
	ErrNotGenerated = errors.New("maze: not generated")
)

// GenerationError is the terminal failure of Generate.
// errors.Is matches both ErrGeneration and the last attempt's cause.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("maze: generation failed after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns ErrGeneration and the last cause.
func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Err}
}
