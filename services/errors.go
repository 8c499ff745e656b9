package services

import "errors"

// Kind classifies a service failure so the transport layer can map it to a
// status code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindConflict
	KindStorage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from any error returned by this package.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func invalidInput(message string, err error) error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: err}
}

func notFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func storageFailure(message string, err error) error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func dbError(message string, err error) error {
	return &Error{Kind: KindUnknown, Message: message, Err: err}
}
