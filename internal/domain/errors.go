package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// ConfigurationError reports a board whose parameters cannot be satisfied.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// OutOfBoundsError reports a coordinate outside [0,Height)x[0,Width).
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not in %dx%d grid", ErrOutOfBounds, e.Row, e.Col, e.Height, e.Width)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
