package doc

import (
	"errors"
	"fmt"
)

// Sentinel errors for document assembly failures.
var (
	ErrNoTemplate   = errors.New("doc: template not configured")
	ErrNoPage       = errors.New("doc: no page has been added")
	ErrFieldExists  = errors.New("doc: form field already defined")
	ErrUnknownField = errors.New("doc: unknown form field")
)

// OpError wraps an underlying error with the document operation it occurred
// in.
type OpError struct {
	Op  string // operation name, e.g. "EmbedImage", "Output"
	Err error  // underlying error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("doc.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("doc.%s: unknown error", e.Op)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}
