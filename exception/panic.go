package exception

const PanicError = String("panicked")

// Panic raises the given value as an Exception with a captured stack trace. An
// Exception that already carries a stack trace is raised unchanged; any other
// value is wrapped into PanicError as the recovered value.
func Panic(value any) {
	if err, ok := value.(Exception); ok {
		if err.GetStackTrace() == nil {
			value = err.FillStackTrace(1)
		}
	} else {
		value = exception{
			Type:       string(PanicError),
			Recovered:  value,
			StackTrace: StackTrace(1),
		}
	}
	panic(value)
}

// Recover converts a value returned by the builtin recover into an Exception.
// It returns nil if recovered is nil. Use it directly on the recover result:
//
//	defer func() {
//		if err := exception.Recover(recover()); err != nil {
//			...
//		}
//	}()
func Recover(recovered any) Exception {
	if recovered == nil {
		return nil
	}
	if err, ok := recovered.(Exception); ok {
		if err.GetStackTrace() == nil {
			err = err.FillStackTrace(1)
		}
		return err
	}
	return exception{
		Type:       string(PanicError),
		Recovered:  recovered,
		StackTrace: StackTrace(1),
	}
}
