package hashtable

import (
	"github.com/go-faster/errors"
)

var (
	// ErrInvalidCapacity is returned by New for a requested capacity outside
	// [1, MaxRequestedCapacity].
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrNotFound is returned by Lookup when no entry has the requested key.
	ErrNotFound = errors.New("key not found")
)
