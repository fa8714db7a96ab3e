package randomizer

import "errors"

var (
	// ErrInvalidCount is returned when a negative number of items is requested.
	ErrInvalidCount = errors.New("count must not be negative")
	// ErrEmptyPopulation is returned when the total weight is not positive, so nothing can be picked.
	ErrEmptyPopulation = errors.New("no item can be selected: empty or zero weight population")
	// ErrNegativeWeight is returned when an item has a weight below zero.
	ErrNegativeWeight = errors.New("negative weight")
	// ErrInvalidWeight is returned when an item has a NaN or infinite weight.
	ErrInvalidWeight = errors.New("weight is not a finite number")
	// ErrNilItem is returned when the sequence contains a nil item.
	ErrNilItem = errors.New("nil item")
)
