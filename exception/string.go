package exception

import "fmt"

// type check
var _ Exception = String("")

// String is a string-based Exception. It behaves like a simple error containing
// only a message, with no cause, recovered value, or stack trace.
//
// String is often used as a starting point for building a full exception with
// additional context. When a cause, a message, or a stack trace is added, a new
// Exception will be created that keeps the type and includes the added details:
//
//	err := exception.String("read failed").FillStackTrace(0)
//
// String can also be used as a constant error value, for example:
//
//	const ErrRead = exception.String("read failed")
type String string

func (e String) Error() string {
	return string(e)
}

func (e String) GetType() string {
	return string(e)
}

func (e String) GetMessage() string {
	return ""
}

func (e String) SetMessage(message string, parameters ...any) Exception {
	if message == "" {
		return e
	}
	if len(parameters) > 0 {
		return exception{
			Type:    string(e),
			Message: fmt.Sprintf(message, parameters...),
		}
	}
	return exception{
		Type:    string(e),
		Message: message,
	}
}

func (e String) GetCause() error {
	return nil
}

func (e String) WithCause(cause error) Exception {
	if cause == nil {
		return e
	}
	return exception{
		Type:  string(e),
		Cause: cause,
	}
}

func (e String) GetRecovered() any {
	return nil
}

func (e String) SetRecovered(recovered any) Exception {
	if recovered == nil {
		return e
	}
	return exception{
		Type:      string(e),
		Recovered: recovered,
	}
}

func (e String) GetStackTrace() StackFrames {
	return nil
}

func (e String) FillStackTrace(skip int) Exception {
	return exception{
		Type:       string(e),
		StackTrace: StackTrace(skip + 1),
	}
}

func (e String) __() {}

func (e String) Is(target error) bool {
	return is(e, target)
}

func (e String) As(target any) bool {
	return as(e, target)
}
