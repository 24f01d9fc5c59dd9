//go:build !no_zerolog

package exception

import (
	"github.com/rs/zerolog"
)

func (e String) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", string(e))
}

func (e exception) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", e.Error())
	if e.Cause != nil {
		event.AnErr("cause", e.Cause)
	}
	if e.Recovered != nil {
		event.Any("recovered", e.Recovered)
	}
	if e.StackTrace != nil {
		event.Any("stack_trace", e.StackTrace)
	}
}

func (f StackFrame) MarshalZerologObject(event *zerolog.Event) {
	event.Str("function", f.Function).Str("file", f.File).Int("line", f.Line)
}

func (s StackFrames) MarshalZerologArray(array *zerolog.Array) {
	for _, frame := range s {
		array.Object(frame)
	}
}
