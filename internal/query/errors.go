package query

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks caller-contract violations.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal marks failures recovered while answering a query.
	ErrInternal = errors.New("internal error")
)

// Kind classifies a query error.
type Kind int

const (
	KindInvalidRequest Kind = iota + 1
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is returned by every Service operation that fails. A not-found icon
// is a result, never an Error.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Unwrap(), e.Msg)
}

// Unwrap returns ErrInvalidRequest or ErrInternal according to Kind.
func (e *Error) Unwrap() error {
	if e.Kind == KindInternal {
		return ErrInternal
	}
	return ErrInvalidRequest
}

func invalidf(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 when err is not a query error.
func KindOf(err error) Kind {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return 0
}
