package model

import "errors"

// ErrOutOfBounds is returned when a coordinate falls outside [0,cols) x
// [0,rows). This is reported, never fatal.
var ErrOutOfBounds = errors.New("nurikabe: coordinate out of bounds")

// ErrSeedImmutable is returned when code attempts to change the state of a
// seed cell; seeds are fixed for the lifetime of a puzzle.
var ErrSeedImmutable = errors.New("nurikabe: seed cells are immutable")
