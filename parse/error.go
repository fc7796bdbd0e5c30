package parse

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes recoverable non-matches from malformed input.
type ErrorKind int

const (
	// KindNotFound marks a soft failure: the alternative did not match and
	// the caller may try another one.
	KindNotFound ErrorKind = iota
	// KindFatal marks a hard failure: the input committed to a construct
	// that could not be completed. Callers must not retry past it.
	KindFatal
)

func (k ErrorKind) String() string {
	if k == KindFatal {
		return "Error"
	}
	return "NotFound"
}

// ParseError is the only error type produced by parsers in this package.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d:%s: '%s'", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
}

// NotFoundAt returns a soft failure positioned at pos.
func NotFoundAt(message string, pos Position) *ParseError {
	return &ParseError{Kind: KindNotFound, Message: message, Pos: pos}
}

// FatalAt returns a hard failure positioned at pos.
func FatalAt(message string, pos Position) *ParseError {
	return &ParseError{Kind: KindFatal, Message: message, Pos: pos}
}

// IsNotFound reports whether err is a soft parse failure.
func IsNotFound(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == KindNotFound
}

// IsFatal reports whether err is a hard parse failure. Errors that are not
// a *ParseError count as fatal so that unexpected failures are never
// silently retried away.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind == KindFatal
	}
	return true
}
