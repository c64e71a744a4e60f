package urdf

import "github.com/pkg/errors"

// ParseError indicates malformed or schema-violating URDF input. It is fatal
// to the parse call that produced it and never populates the model cache.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return e.cause.Error()
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// newParseError wraps a cause with context into a ParseError.
func newParseError(cause error, msg string) *ParseError {
	return &ParseError{cause: errors.Wrap(cause, msg)}
}

// NewMissingAttributeError returns a ParseError for a required attribute that
// was absent from an element.
func NewMissingAttributeError(element, attribute, name string) error {
	return &ParseError{cause: errors.Errorf("%s element %q is missing required attribute %q", element, name, attribute)}
}

// NewUnsupportedJointTypeError returns a ParseError for a joint type this
// package does not support.
func NewUnsupportedJointTypeError(jointType string) error {
	return &ParseError{cause: errors.Errorf("unsupported joint type: %q", jointType)}
}
