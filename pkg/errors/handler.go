package errors

import (
	stderrors "errors"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs the handler that receives reported errors and
// recovered panics and returns the previous one. Nil restores a LogHandler
// writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends an error to the installed handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *LoaderError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportError reports a failure that is handled by logging rather than by
// returning it, such as a bad host event or a failed re-render. A
// *LoaderError in err's chain is reported unchanged so its operation and
// path are kept; any other error is wrapped under op with kind.
func ReportError(op string, kind ErrorKind, err error) {
	if err == nil {
		return
	}
	var le *LoaderError
	if stderrors.As(err, &le) {
		Report(le)
		return
	}
	Report(&LoaderError{Op: op, Kind: kind, Err: err})
}

// ReportPanic sends a panic error to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic instead of propagating it. It must be deferred
// directly: defer errors.Recover("platform.AppearanceService.Update").
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is like Recover but also calls callback with the
// panic value after reporting it.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(4),
	})
}

// captureStack formats the call stack, skipping the given number of frames
// (runtime.Callers and captureStack count as two).
func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
