package firebird

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("firebird: invalid configuration")
	ErrInvalidFieldFormat   = errors.New("firebird: invalid field format")
	ErrUnsupportedDataType  = errors.New("firebird: unsupported data type")
	ErrNoAttributesSet      = errors.New("firebird: no user details set, provide at least one detail")
	ErrSubmissionFailed     = errors.New("firebird: submission failed")
	ErrTransport            = errors.New("firebird: transport error")
	ErrMalformedResponse    = errors.New("firebird: malformed response")
)

// FieldError reports a well-known field whose value failed its format rule.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidFieldFormat
}

// DataTypeError reports a data type alias that has no canonical mapping.
type DataTypeError struct {
	Alias string
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("invalid data type provided: %q", e.Alias)
}

func (e *DataTypeError) Unwrap() error {
	return ErrUnsupportedDataType
}

// SubmissionError is returned when the endpoint answers with anything but 200.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("api request failed with status code %d: %s", e.StatusCode, e.Body)
}

func (e *SubmissionError) Unwrap() error {
	return ErrSubmissionFailed
}

// TransportError wraps a failure of the HTTP exchange itself.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
