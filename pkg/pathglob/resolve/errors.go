package resolve

import (
	"github.com/shellkit/pathglob/pkg/pathglob/span"
)

// ErrorKind classifies a resolution failure.
type ErrorKind int

const (
	// NotFound means a literal target does not exist.
	NotFound ErrorKind = iota
	// PermissionDenied means a literal target directory cannot be read.
	PermissionDenied
	// PatternError means the glob syntax is malformed, or an entry failed
	// during lazy traversal.
	PatternError
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "directory not found"
	case PermissionDenied:
		return "permission denied"
	case PatternError:
		return "error extracting glob pattern"
	default:
		return "unknown error"
	}
}

// Error is a resolution failure tagged with the span of the input that
// caused it, so callers can point diagnostics at the offending text.
type Error struct {
	Kind   ErrorKind
	Path   string
	Span   span.Span
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
