package exception

import "fmt"

// Exception defines a lightweight exception model for Go, providing mechanisms
// for chaining a single causing error, storing recovered panic values, and
// capturing stack traces. An Exception together with its causes forms a
// singly-linked chain; the deepest cause is the original failure and is the
// one that carries the interesting stack trace.
//
// Methods that return Exception may either modify the current exception in place
// or return a new exception instance. Callers should always use the returned
// value and must not assume that the original exception remains unchanged.
type Exception interface {
	// Error returns a string representation of this Exception in the form of "Type: message"
	Error() string

	// GetType returns the type of this Exception.
	GetType() string

	// GetMessage returns the message of this Exception. Can be empty.
	GetMessage() string

	// SetMessage stores a message inside this Exception.
	//
	// Note: This method may modify the current Exception or return a new one. Always
	// use the returned value.
	SetMessage(message string, parameters ...any) Exception

	// GetCause returns the causing error of this Exception, or nil if no cause
	// has been attached.
	GetCause() error

	// WithCause attaches a causing error to this Exception, replacing any
	// previously attached cause. A nil cause is ignored.
	//
	// Note: This method may modify the current Exception or return a new one. Always
	// use the returned value.
	WithCause(cause error) Exception

	// GetRecovered returns the value captured from a panic recovery, if any. It
	// returns nil if no value was recovered.
	GetRecovered() any

	// SetRecovered stores a recovered panic value inside this Exception.
	//
	// Note: This method may modify the current Exception or return a new one. Always
	// use the returned value.
	SetRecovered(recovered any) Exception

	// GetStackTrace returns the stack trace captured for this Exception, represented
	// as a slice of StackFrame values. The slice may be empty if no stack trace was
	// filled.
	GetStackTrace() StackFrames

	// FillStackTrace captures the current call stack starting from the caller of
	// FillStackTrace itself and attaches it to the Exception.
	//
	// The skip parameter controls how many additional stack frames
	// are omitted. A value of 0 includes the caller of FillStackTrace,
	// a value of 1 skips that frame, and higher values skip more.
	//
	// Note: This method may modify the current Exception or return a new one. Always
	// use the returned value.
	FillStackTrace(skip int) Exception

	__() // private
}

type exception struct {
	Type       string
	Message    string
	Cause      error
	Recovered  any
	StackTrace []StackFrame
}

func (e exception) Error() string {
	if e.Message != "" {
		return e.Type + ": " + e.Message
	}
	return e.Type
}

func (e exception) GetType() string {
	return e.Type
}

func (e exception) GetMessage() string {
	return e.Message
}

func (e exception) SetMessage(message string, parameters ...any) Exception {
	if len(parameters) > 0 {
		e.Message = fmt.Sprintf(message, parameters...)
	} else {
		e.Message = message
	}
	return e
}

func (e exception) GetCause() error {
	return e.Cause
}

func (e exception) WithCause(cause error) Exception {
	if cause != nil {
		e.Cause = cause
	}
	return e
}

func (e exception) GetRecovered() any {
	return e.Recovered
}

func (e exception) SetRecovered(recovered any) Exception {
	e.Recovered = recovered
	return e
}

func (e exception) GetStackTrace() StackFrames {
	return e.StackTrace
}

func (e exception) FillStackTrace(skip int) Exception {
	e.StackTrace = StackTrace(skip + 1)
	return e
}

func (e exception) __() {}

func (e exception) Unwrap() error {
	return e.Cause
}

func (e exception) Is(target error) bool {
	return is(e, target)
}

func (e exception) As(target any) bool {
	return as(e, target)
}
