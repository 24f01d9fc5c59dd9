package stacktrace

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/paluchbiz/go-testing/exception"
)

const indent = "\t"

// maxChainDepth bounds the cause-chain walk so that an accidentally cyclic
// chain cannot loop forever.
const maxChainDepth = 256

// Traced is the capability an error implements to expose the call stack that
// was captured when it was created. exception.Exception satisfies it; any
// other error type may as well.
type Traced interface {
	GetStackTrace() exception.StackFrames
}

// Report renders the error and its cause chain as a filtered stack-trace
// report: the header line of every error in the chain, then the frames of the
// deepest cause with noise-package runs elided.
func Report(err error) string {
	return ReportFiltered(err, true)
}

// ReportFiltered renders the error like Report. With shouldFilter false every
// frame is kept and no elision takes place.
//
// ReportFiltered never panics: if rendering fails for any reason, the plain
// display text of the rendering failure is returned instead.
func ReportFiltered(err error, shouldFilter bool) (report string) {
	defer func() {
		if recovered := exception.Recover(recover()); recovered != nil {
			log.Error().Err(recovered).Msg("Error filtering stack trace")
			if recovered.GetRecovered() != nil {
				recovered = recovered.SetMessage("%v", recovered.GetRecovered())
			}
			report = recovered.Error()
		}
	}()
	var builder strings.Builder
	writeTrace(&builder, err, shouldFilter)
	return builder.String()
}

func writeTrace(builder *strings.Builder, err error, shouldFilter bool) {
	builder.WriteString("Exception: ")
	deepest := writeChain(builder, err)
	writeFrames(builder, framesOf(deepest), shouldFilter)
}

// writeChain prints the display string of every error in the cause chain,
// from the given error down to the deepest cause, and returns that deepest
// cause.
func writeChain(builder *strings.Builder, err error) error {
	builder.WriteString(err.Error())
	builder.WriteByte('\n')
	for depth := 0; depth < maxChainDepth; depth++ {
		cause := errors.Unwrap(err)
		if cause == nil {
			break
		}
		builder.WriteString("Caused by: ")
		builder.WriteString(cause.Error())
		builder.WriteByte('\n')
		err = cause
	}
	return err
}

func framesOf(err error) exception.StackFrames {
	if traced, ok := err.(Traced); ok {
		return traced.GetStackTrace()
	}
	return nil
}

// writeFrames makes a single forward pass over the frames. A kept frame is
// printed as "at Function(File:Line)"; a contiguous run of suppressed frames
// is replaced with one summary line naming the run length and the matched
// prefixes. The very first frame is always kept so that the crash site is
// never hidden.
func writeFrames(builder *strings.Builder, frames exception.StackFrames, shouldFilter bool) {
	var skippedPackages []string
	skippedLines := 0
	first := true
	for _, frame := range frames {
		suppressedBy := ""
		suppressed := false
		if shouldFilter && !first {
			suppressedBy, suppressed = matchSuppressed(frame.Function)
		}
		first = false

		if !suppressed {
			if skippedLines > 0 {
				writeSkipped(builder, skippedPackages, skippedLines)
				skippedPackages = skippedPackages[:0]
				skippedLines = 0
			}
			builder.WriteString(indent)
			builder.WriteString("at ")
			builder.WriteString(frame.String())
			builder.WriteByte('\n')
		} else {
			skippedLines++
			if !slices.Contains(skippedPackages, suppressedBy) {
				skippedPackages = append(skippedPackages, suppressedBy)
			}
		}
	}
	if skippedLines > 0 {
		writeSkipped(builder, skippedPackages, skippedLines)
	}
}

// writeSkipped flushes one summary line, for example:
//
//	37 lines skipped for {org.h2, org.hibernate, sun.}
func writeSkipped(builder *strings.Builder, skippedPackages []string, skippedLines int) {
	slices.Sort(skippedPackages)
	builder.WriteString(indent)
	builder.WriteString(indent)
	builder.WriteString(strconv.Itoa(skippedLines))
	if skippedLines == 1 {
		builder.WriteString(" line skipped for {")
	} else {
		builder.WriteString(" lines skipped for {")
	}
	builder.WriteString(strings.Join(skippedPackages, ", "))
	builder.WriteString("}\n")
}
