package exception

import (
	"runtime"
	"strconv"
)

// StackFrame is one entry of a captured call stack. Function is the fully
// qualified name of the executing function, for example
// "github.com/paluchbiz/go-testing/exception.StackTrace".
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame as "Function(File:Line)".
func (f StackFrame) String() string {
	return f.Function + "(" + f.File + ":" + strconv.Itoa(f.Line) + ")"
}

type StackFrames []StackFrame

// StackTrace captures the current call stack, starting from the caller of
// StackTrace itself. The skip parameter omits additional frames: 0 includes
// the caller, 1 skips it, and so on.
func StackTrace(skip int) StackFrames {
	// get stack trace
	const depth = 32
	var programCounters [depth]uintptr
	programCountersLength := runtime.Callers(2+skip, programCounters[:])
	if programCountersLength == 0 {
		return nil
	}
	frames := runtime.CallersFrames(programCounters[:programCountersLength])
	// create stack frames
	var stack [depth]StackFrame
	stackLength := 0
	for stackLength < depth {
		frame, more := frames.Next()
		stack[stackLength] = StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}
		stackLength++
		if !more {
			break
		}
	}
	return stack[:stackLength]
}
