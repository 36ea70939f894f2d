package alloc

import "errors"

var (
	// ErrAllocation indicates the requested slot storage could not be obtained.
	ErrAllocation = errors.New("alloc: allocation failed")

	// ErrConstruction indicates an element initializer (default, copy or move) failed.
	ErrConstruction = errors.New("alloc: element construction failed")
)
