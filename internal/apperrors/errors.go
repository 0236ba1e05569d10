package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies the failures that cross the service boundary so the HTTP
// layer can map them to a status code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindOrderNotFound
	KindInvalidPayment
	KindGatewayIntegration
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, nil when there is none
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause reachable through errors.Is/As while tagging it with a kind.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func OrderNotFound(format string, args ...any) *Error {
	return New(KindOrderNotFound, format, args...)
}

func InvalidPayment(format string, args ...any) *Error {
	return New(KindInvalidPayment, format, args...)
}

func GatewayIntegration(err error, format string, args ...any) *Error {
	return Wrap(KindGatewayIntegration, err, format, args...)
}
