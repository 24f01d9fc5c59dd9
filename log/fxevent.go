package log

import (
	"github.com/rs/zerolog"
	"go.uber.org/dig"
	"go.uber.org/fx/fxevent"
)

// fxLogger is an event logger that logs events to Zerolog.
type fxLogger struct {
	*zerolog.Logger
}

// InitFxLogger returns the fx event logger instance for Zerolog.
func InitFxLogger(logger *zerolog.Logger) fxevent.Logger {
	return fxLogger{Logger: logger}
}

// LogEvent logs the given event to the provided Zerolog.
func (l fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.Error().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Err(dig.RootCause(e.Err)).
				Msg("OnStart hook failed")
		} else {
			l.Trace().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Dur("runtime", e.Runtime).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.Error().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Err(dig.RootCause(e.Err)).
				Msg("OnStop hook failed")
		} else {
			l.Trace().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Dur("runtime", e.Runtime).
				Msg("OnStop hook executed")
		}
	case *fxevent.Provided:
		if e.Err != nil {
			l.Error().
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				Err(dig.RootCause(e.Err)).
				Msg("Error encountered while providing")
		} else {
			l.Info().
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				Msg("Provided")
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			l.Error().
				Str("function", e.FunctionName).
				Err(dig.RootCause(e.Err)).
				Msg("Invoke failed")
		} else {
			l.Info().
				Str("function", e.FunctionName).
				Msg("Invoked")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Start failed")
		} else {
			l.Info().Msg("Started")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Stop failed")
		} else {
			l.Info().Msg("Stopped")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Logger initialization failed")
		} else {
			l.Trace().Str("constructor", e.ConstructorName).Msg("Logger initialized")
		}
	}
}
