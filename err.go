package schema

/*
err.go contains the closed set of decode error kinds, the rich error
object returned to callers, and the path/context decoration machinery
described by the error context engine. Every failure is one *Error
value whose Kind names its category, built in one place (errCtx.fail);
the Error/Unwrap shape is grounded on the teacher corpus's err.go.
*/

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind identifies the category of a decode failure. The set is
// closed: no caller can introduce a new kind.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	Truncated
	InvalidLength
	UnexpectedTag
	IntegerTooLarge
	InvalidBoolean
	InvalidNull
	InvalidBitString
	InvalidOid
	OidComponentOverflow
	InvalidString
	InvalidDateTime
	MissingField
	DuplicateSetElement
	NoMatchingAlternative
	TrailingBytes
	TooFewElements
	TooManyElements
	RecursionDepthExceeded
	ValidationFailed
)

var errorKindNames = map[ErrorKind]string{
	Truncated:              "Truncated",
	InvalidLength:          "InvalidLength",
	UnexpectedTag:          "UnexpectedTag",
	IntegerTooLarge:        "IntegerTooLarge",
	InvalidBoolean:         "InvalidBoolean",
	InvalidNull:            "InvalidNull",
	InvalidBitString:       "InvalidBitString",
	InvalidOid:             "InvalidOid",
	OidComponentOverflow:   "OidComponentOverflow",
	InvalidString:          "InvalidString",
	InvalidDateTime:        "InvalidDateTime",
	MissingField:           "MissingField",
	DuplicateSetElement:    "DuplicateSetElement",
	NoMatchingAlternative:  "NoMatchingAlternative",
	TrailingBytes:          "TrailingBytes",
	TooFewElements:         "TooFewElements",
	TooManyElements:        "TooManyElements",
	RecursionDepthExceeded: "RecursionDepthExceeded",
	ValidationFailed:       "ValidationFailed",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// PathEntry names one schema node on the route from the root of a decode
// call to the node at which a failure occurred.
type PathEntry struct {
	Name string
	Type string
}

func (p PathEntry) String() string { return p.Name + "(" + p.Type + ")" }

// Error is the value every failing decode operation returns. Path is
// ordered from the outermost schema node to the innermost one, subject
// to the active [ContextPolicy]; Err, when non-nil, is the immediate
// cause beneath this error (a validator's own error, or a lower-level
// parse failure).
type Error struct {
	Kind    ErrorKind
	Message string
	Path    []PathEntry
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Path) > 0 {
		b.WriteString(" [")
		for i, p := range e.Path {
			if i > 0 {
				b.WriteString(" / ")
			}
			b.WriteString(p.String())
		}
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// HasKind reports whether err is, or wraps, a *Error of the given kind.
func HasKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ContextPolicy selects how much of the schema path an [Error] carries.
type ContextPolicy int

const (
	// ContextFull attaches the complete path from the root schema to the
	// failing node.
	ContextFull ContextPolicy = iota
	// ContextLast attaches only the failing node's own entry.
	ContextLast
	// ContextNone attaches no path at all.
	ContextNone
)

// errCtx threads the current schema path through a decode call and
// builds decorated errors at the point of failure. Ancestors propagate
// an already-built *Error unchanged; only the node that first detects a
// failure calls fail, so a path is never decorated twice.
type errCtx struct {
	policy ContextPolicy
	path   []PathEntry
}

func newErrCtx(policy ContextPolicy) *errCtx {
	return &errCtx{policy: policy}
}

// push records name/typ as the currently-decoding node and returns a
// function that restores the path to its prior length; callers defer it.
func (c *errCtx) push(name, typ string) func() {
	c.path = append(c.path, PathEntry{Name: name, Type: typ})
	depth := len(c.path)
	return func() { c.path = c.path[:depth-1] }
}

func (c *errCtx) fail(kind ErrorKind, cause error, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = sprintf(format, args...)
	}
	var path []PathEntry
	switch c.policy {
	case ContextFull:
		path = append([]PathEntry(nil), c.path...)
	case ContextLast:
		if len(c.path) > 0 {
			path = []PathEntry{c.path[len(c.path)-1]}
		}
	case ContextNone:
		// leave nil
	}
	return &Error{Kind: kind, Message: msg, Path: path, Err: cause}
}
