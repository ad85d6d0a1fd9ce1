// Package usderr tags every error surfaced by this pipeline with a
// Kind so callers can distinguish a lenient parse hiccup from a fatal
// format mismatch, the way scene/parser.go's emitError prefixes every
// message with the file/line it came from.
package usderr

import (
	"errors"
	"fmt"
)

// Kind classifies the origin of an error.
type Kind int

const (
	// IO covers failures reading or writing files: missing stage,
	// permission errors, truncated shard reads.
	IO Kind = iota
	// Parse covers malformed USD text the parser could not make
	// sense of. Per the error-handling policy these are swallowed
	// locally by the parser itself; this Kind exists for the rare
	// caller that wants to surface one anyway.
	Parse
	// Cycle covers reference cycles and traversal depth exceeding
	// the configured max_depth.
	Cycle
	// FormatMismatch covers binary scene-index files with a bad
	// magic or an unsupported version. Fatal: callers must not
	// proceed.
	FormatMismatch
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case Parse:
		return "parse"
	case Cycle:
		return "cycle"
	case FormatMismatch:
		return "format_mismatch"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("usdindex: %s: %s: %s", e.kind, e.msg, e.err.Error())
	}
	return fmt.Sprintf("usdindex: %s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// Kind reports the error's classification, for errors.As-based switches.
func (e *Error) Kind() Kind { return e.kind }

// New builds a Kind-tagged error from a format string.
func New(kind Kind, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a Kind, preserving it for errors.Is
// and errors.Unwrap.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: err.Error(), err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
