package iocp

import (
	"errors"
	"fmt"
)

// ErrorCode is the high-level category an Error falls into, mirroring the
// runtime's error taxonomy: failures can occur at submission time, at
// completion time, at resource setup time, or from a caller misusing a
// buffer.
type ErrorCode string

const (
	// SubmissionError covers a Descriptor.Submit call that failed
	// immediately — not ERROR_IO_PENDING, a real rejection.
	SubmissionError ErrorCode = "submission error"
	// CompletionError covers a packet GetQueuedCompletionStatus reported
	// with a non-zero completion status.
	CompletionError ErrorCode = "completion error"
	// HandleEOF is a read that ran off the end of the file; reported as
	// a zero-byte success rather than an error further up the stack, but
	// kept as a distinct code for logging and metrics.
	HandleEOF ErrorCode = "handle eof"
	// SetupError covers resource construction: CreateFile, WSASocket,
	// Bind, Listen, and attaching a handle to a completion port.
	SetupError ErrorCode = "setup error"
	// InvalidBufferError covers a buffer that fails a runtime shape
	// check — wrong capacity, not pinned, zero-length vectored segment.
	InvalidBufferError ErrorCode = "invalid buffer"
)

// Error is a structured error carrying the operation name, the resource it
// was operating on, a high-level code, and the underlying cause.
type Error struct {
	Op       string    // operation that failed, e.g. "ReadAt", "Accept", "DialTCP"
	Resource string    // kind of resource: "file", "tcp", "udp", "unix", "pipe" (empty if not applicable)
	Addr     string    // path or address involved, if any
	Code     ErrorCode // high-level error category
	Win32    uint32    // Windows error code, 0 if not applicable
	Msg      string    // human-readable message
	Inner    error     // wrapped error
}

func (e *Error) Error() string {
	var parts []string

	if e.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", e.Resource))
	}
	if e.Addr != "" {
		parts = append(parts, fmt.Sprintf("addr=%s", e.Addr))
	}
	if e.Win32 != 0 {
		parts = append(parts, fmt.Sprintf("win32=%d", e.Win32))
	}

	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}

	if e.Op != "" {
		if len(parts) > 0 {
			return fmt.Sprintf("iocp: %s: %s (%s)", e.Op, msg, parts[0])
		}
		return fmt.Sprintf("iocp: %s: %s", e.Op, msg)
	}
	return fmt.Sprintf("iocp: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error { return e.Inner }

// Is compares two *Error values by code.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

// NewError creates a structured error with no resource context.
func NewError(op string, code ErrorCode, msg string) *Error {
	return &Error{Op: op, Code: code, Msg: msg}
}

// NewResourceError creates a structured error tagged with the resource
// kind and address it concerns.
func NewResourceError(op, resource, addr string, code ErrorCode, msg string) *Error {
	return &Error{Op: op, Resource: resource, Addr: addr, Code: code, Msg: msg}
}

// NewWin32Error creates a structured error from a raw Windows error code.
func NewWin32Error(op string, code ErrorCode, win32 uint32, inner error) *Error {
	msg := fmt.Sprintf("win32 error %d", win32)
	if inner != nil {
		msg = inner.Error()
	}
	return &Error{Op: op, Code: code, Win32: win32, Msg: msg, Inner: inner}
}

// WrapError wraps an existing error with operation context, preserving a
// nested *Error's resource/code/addr if inner is already one.
func WrapError(op string, inner error) *Error {
	if inner == nil {
		return nil
	}

	if ie, ok := inner.(*Error); ok {
		return &Error{
			Op:       op,
			Resource: ie.Resource,
			Addr:     ie.Addr,
			Code:     ie.Code,
			Win32:    ie.Win32,
			Msg:      ie.Msg,
			Inner:    ie.Inner,
		}
	}

	return &Error{Op: op, Code: CompletionError, Msg: inner.Error(), Inner: inner}
}

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}
