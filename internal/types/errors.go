package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	// ErrInvalidArgument marks malformed tag item construction inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch marks access to the wrong variant of a TagValue.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidDate marks a date that cannot be rendered.
	ErrInvalidDate = errors.New("invalid date")
	// ErrIO marks a failed or short write to the destination.
	ErrIO = errors.New("i/o error")
	// ErrParse marks a tag argument that could not be parsed.
	ErrParse = errors.New("parse error")
)

// InvalidArgumentError is returned when a TagItem cannot be constructed.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// TypeMismatchError is returned when a TagValue is read as the wrong kind.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: requested %s from %s value", e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// InvalidDateError is returned when a Date is out of range.
type InvalidDateError struct {
	Date   Date
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %d-%d-%d: %s", e.Date.Year, e.Date.Month, e.Date.Day, e.Reason)
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// IOError is returned when one of the tag block writes fails or comes up short.
//
// Bytes written by earlier stages stay in the destination; the tag block
// left behind is truncated.
type IOError struct {
	Err      error
	Stage    string // "header", "items", "footer"
	Written  int
	Expected int
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("write %s: wrote %d of %d bytes: %v", e.Stage, e.Written, e.Expected, e.Err)
	}
	return fmt.Sprintf("write %s: short write: wrote %d of %d bytes", e.Stage, e.Written, e.Expected)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a "key=value" argument is rejected.
type ParseError struct {
	Arg    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tag %q: %s", e.Arg, e.Reason)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// CorruptedTagError is returned when a tag block does not decode.
type CorruptedTagError struct {
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	return fmt.Sprintf("corrupted tag at offset %d: %s", e.Offset, e.Reason)
}

// VerifyError is returned when the bytes read back after a write differ from
// the bytes that were encoded.
type VerifyError struct {
	Path   string
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("%s: verification failed: %s", e.Path, e.Reason)
}

// UnsupportedFormatError is returned for tag formats without a registered writer.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported tag format: %s", e.Name)
}
