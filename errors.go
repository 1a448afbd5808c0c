package pbloom

import "github.com/zeebo/errs"

// Error classes for every caller-facing failure kind. All of them are
// detected before any mutation begins, so a failed call never leaves a
// filter partially modified.
var (
	ErrInvalidParameters   = errs.Class("invalid parameters")
	ErrUnsupportedCapacity = errs.Class("unsupported capacity")
	ErrUnknownHashID       = errs.Class("unknown hash id")
	ErrIncompatibleFilters = errs.Class("incompatible filters")
	ErrMalformedBinary     = errs.Class("malformed binary")
)
