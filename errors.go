package uix

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// InvalidXML reports a well-formedness failure of the XML layer.
	InvalidXML ErrorKind = iota + 1
	// InvalidFormat reports markup that is valid XML but not valid UIX.
	InvalidFormat
)

type ParseError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Kind == InvalidXML {
		return fmt.Sprintf("XML parsing error: %v", e.Err)
	}
	return fmt.Sprintf("Invalid UIX format: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func xmlError(err error) error {
	return errors.WithStack(&ParseError{Kind: InvalidXML, Message: err.Error(), Err: err})
}

func formatError(format string, args ...any) error {
	return errors.WithStack(&ParseError{Kind: InvalidFormat, Message: fmt.Sprintf(format, args...)})
}

// IsFormatError reports whether err is an invalid-format ParseError.
func IsFormatError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == InvalidFormat
}

// IsXMLError reports whether err is a malformed-XML ParseError.
func IsXMLError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == InvalidXML
}
