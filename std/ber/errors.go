package ber

import (
	"errors"
	"fmt"
)

// ErrFormat reports malformed wire data. Every error of this type, and the
// error types wrapping one, belongs to the decoding error class.
type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return "ber: " + e.Msg
}

var (
	ErrUnexpectedEnd      = ErrFormat{"unexpected end"}
	ErrLengthTooLong      = ErrFormat{"length too long"}
	ErrCorruptedPrimitive = ErrFormat{"corrupted primitive"}
	ErrExtraData          = ErrFormat{"extra data"}
	ErrIncomplete         = ErrFormat{"incomplete"}
	ErrChoiceNotMatched   = ErrFormat{"choice not matched"}
	ErrTooDeep            = ErrFormat{"nesting too deep"}
)

// ErrTagMismatch is returned when a node does not carry the tag a mandatory
// field or a primitive type requires.
type ErrTagMismatch struct {
	Expected Tag
	Actual   Tag
}

func (e ErrTagMismatch) Error() string {
	return fmt.Sprintf("ber: tag mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// ErrFailToParse attaches the name of the type or field being decoded to an
// underlying decoding error. Nested failures produce a chain that reads from
// the outermost production inwards.
type ErrFailToParse struct {
	Name string
	Err  error
}

func (e ErrFailToParse) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Name, e.Err)
}

func (e ErrFailToParse) Unwrap() error {
	return e.Err
}

// ErrOffset records the stream offset of the TLV unit in which a framing
// error was detected.
type ErrOffset struct {
	Offset int64
	Err    error
}

func (e ErrOffset) Error() string {
	return fmt.Sprintf("%v (at offset %d)", e.Err, e.Offset)
}

func (e ErrOffset) Unwrap() error {
	return e.Err
}

// ErrInvariant reports an in-memory value that cannot be encoded, such as a
// CHOICE with no alternative set or a SEQUENCE missing a mandatory field.
// It never originates from wire data.
type ErrInvariant struct {
	Name string
	Msg  string
}

func (e ErrInvariant) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Name, e.Msg)
}

// IsDecodingError reports whether err was caused by malformed wire data.
func IsDecodingError(err error) bool {
	var f ErrFormat
	var m ErrTagMismatch
	return errors.As(err, &f) || errors.As(err, &m)
}

// IsInvariantViolation reports whether err was caused by an invalid value
// handed to an encoder.
func IsInvariantViolation(err error) bool {
	var v ErrInvariant
	return errors.As(err, &v)
}
