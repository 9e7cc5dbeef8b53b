package parser

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a parse error.
type ErrorKind string

const (
	// KindMalformedStructure marks a line that cannot be placed in the tree,
	// such as a key under a sequence or a list item under a mapping.
	KindMalformedStructure ErrorKind = "malformed_structure"

	// KindUnterminatedBlockScalar marks a block scalar that ran into the end
	// of input. It is reported as a warning; the block is closed implicitly.
	KindUnterminatedBlockScalar ErrorKind = "unterminated_block_scalar"
)

// Sentinel errors for use with errors.Is.
var (
	ErrMalformedStructure      = errors.New("malformed structure")
	ErrUnterminatedBlockScalar = errors.New("unterminated block scalar")
)

// Error is a parse error tied to a 1-based source line. Line is zero when
// the position is unknown.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is lets errors.Is match an *Error against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMalformedStructure:
		return e.Kind == KindMalformedStructure
	case ErrUnterminatedBlockScalar:
		return e.Kind == KindUnterminatedBlockScalar
	}
	return false
}

func malformed(line int, format string, args ...any) *Error {
	return &Error{
		Kind:    KindMalformedStructure,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}
