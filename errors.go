package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// Sentinel errors; match them with errors.Is.
var (
	ErrInvalidArgument = types.ErrInvalidArgument
	ErrTypeMismatch    = types.ErrTypeMismatch
	ErrInvalidDate     = types.ErrInvalidDate
	ErrIO              = types.ErrIO
	ErrParse           = types.ErrParse
)

// InvalidArgumentError is an alias to types.InvalidArgumentError.
// Re-exporting from internal/types to maintain public API.
type InvalidArgumentError = types.InvalidArgumentError

// TypeMismatchError is an alias to types.TypeMismatchError.
type TypeMismatchError = types.TypeMismatchError

// InvalidDateError is an alias to types.InvalidDateError.
type InvalidDateError = types.InvalidDateError

// IOError is an alias to types.IOError.
//
// When AppendFile returns an IOError the file may end with a truncated
// tag block; appending is not rolled back.
type IOError = types.IOError

// ParseError is an alias to types.ParseError.
type ParseError = types.ParseError

// CorruptedTagError is an alias to types.CorruptedTagError.
type CorruptedTagError = types.CorruptedTagError

// VerifyError is an alias to types.VerifyError.
type VerifyError = types.VerifyError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError
