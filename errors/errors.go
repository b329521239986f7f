package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
)

// Kind classifies an error so callers can branch without string matching.
// Invalid is bad input or a failed validation, Config a generator
// misconfiguration (empty tables, missing parents, bad windows), IO a
// filesystem failure and Sink a kafka, mongo or redis failure.
type Kind uint8

const (
	Other Kind = iota
	Invalid
	Config
	IO
	Sink
	Internal
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Config:
		return "config"
	case IO:
		return "io"
	case Sink:
		return "sink"
	case Internal:
		return "internal"
	}
	return "other"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error of the given kind. err may be nil.
func E(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
