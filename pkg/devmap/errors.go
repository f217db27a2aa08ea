package devmap

import (
	"errors"
	"fmt"
)

// Validation failures. A *FieldError wraps one of these, so callers can test
// with errors.Is.
var (
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrUnknownField     = errors.New("unknown field")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrSlrCountMismatch = errors.New("slr count mismatch")
)

// API misuse.
var (
	ErrUnknownFamily = errors.New("unknown family")
	ErrInvalidPath   = errors.New("invalid field path")
)

// FieldError reports a validation failure at a dotted field path such as
// "us.jtag.slrs[1].fuse_rsa".
type FieldError struct {
	Path   string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("devmap: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("devmap: %s: %v: %s", e.Path, e.Err, e.Detail)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(path string, err error, format string, args ...any) *FieldError {
	return &FieldError{Path: path, Err: err, Detail: fmt.Sprintf(format, args...)}
}
