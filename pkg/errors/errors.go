// Package errors provides structured error types for the jigsaw application.
//
// This package defines error codes and types that enable:
//   - Consistent handling of rejected input across the CLI and the session
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes group failures by what the caller can do about them:
//   - INVALID_* and UNSUPPORTED_TYPE / DECODE_FAILED: the input was rejected
//     before any puzzle state changed
//   - STORE_FAILURE: the local key-value store could not be read or written;
//     callers degrade the feature instead of failing
//   - NOT_FOUND: a requested history entry or file does not exist
//   - INTERNAL: unexpected failures
//
// Degenerate geometry (a piece larger than every scatter zone) never produces
// an error; the layout package resolves it by falling back to the origin.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "rows must be positive, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecodeFailed, origErr, "decode %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Rejected input. The operation made no state change.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"    // malformed argument or flag combination
	ErrCodeInvalidImage    Code = "INVALID_IMAGE"    // empty, oversized or undecodable image bytes
	ErrCodeUnsupportedType Code = "UNSUPPORTED_TYPE" // sniffed MIME type is not PNG or JPEG
	ErrCodeDecodeFailed    Code = "DECODE_FAILED"    // data URL or image body could not be decoded
	ErrCodeInvalidGrid     Code = "INVALID_GRID"     // rows or columns outside 1..MaxGridRows, 1..MaxGridCols
	ErrCodeInvalidSurface  Code = "INVALID_SURFACE"  // play surface without positive area
	ErrCodeInvalidLanguage Code = "INVALID_LANGUAGE" // language code missing from the catalog
	ErrCodeInvalidPath     Code = "INVALID_PATH"     // path escapes its directory or is empty

	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeStoreFailure  Code = "STORE_FAILURE"

	ErrCodeNotFound     Code = "NOT_FOUND"      // history entry
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND" // image, layout or config file

	// ErrCodeNoImage is returned when a game is started before an image is
	// set and history offers none.
	ErrCodeNoImage Code = "NO_IMAGE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// rejections lists the codes for which Rejected reports true.
var rejections = map[Code]bool{
	ErrCodeInvalidInput:    true,
	ErrCodeInvalidImage:    true,
	ErrCodeUnsupportedType: true,
	ErrCodeDecodeFailed:    true,
	ErrCodeInvalidGrid:     true,
	ErrCodeInvalidSurface:  true,
	ErrCodeInvalidLanguage: true,
	ErrCodeInvalidPath:     true,
}

// Error carries a Code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with cause attached for errors.Is and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost *Error in err's chain carries code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Rejected reports whether err is an input rejection: the operation refused
// the input before touching any state, and the session can simply continue.
func Rejected(err error) bool {
	return rejections[GetCode(err)]
}
