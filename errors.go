package frac

import "errors"

// Kind classifies why a fraction operation failed.
type Kind int

const (
	// ZeroDivisor means a denominator is or would become zero.
	ZeroDivisor Kind = iota + 1
	// Overflow means a checked int32 step would leave the representable range.
	Overflow
	// InvalidFormat means text input did not match the fraction grammar.
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case ZeroDivisor:
		return "zero divisor"
	case Overflow:
		return "overflow"
	case InvalidFormat:
		return "invalid format"
	}
	return "unknown"
}

// Error is returned by every failing operation in this package.
type Error struct {
	Kind    Kind
	Message string
}

// Match targets for errors.Is.
var (
	ErrZeroDivisor   = &Error{Kind: ZeroDivisor}
	ErrOverflow      = &Error{Kind: Overflow}
	ErrInvalidFormat = &Error{Kind: InvalidFormat}
)

func (e *Error) Error() string {
	if e.Message == "" {
		return "frac: " + e.Kind.String()
	}
	return "frac: " + e.Kind.String() + ": " + e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func zeroDivisor(msg string) error {
	return &Error{Kind: ZeroDivisor, Message: msg}
}

func overflow(msg string) error {
	return &Error{Kind: Overflow, Message: msg}
}

func invalidFormat(msg string) error {
	return &Error{Kind: InvalidFormat, Message: msg}
}

// KindOf returns the kind carried by err, or 0 when err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
