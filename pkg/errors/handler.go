package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything reported during measure and layout
	// passes. It defaults to a non-verbose LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs the handler for later passes. Nil restores the default
// LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the installed handler and returns to the pass, which
// goes on with its degraded geometry. A zero Timestamp is set to now, and null
// guards without a StackTrace get the reporting caller's stack.
func Report(err *LayoutError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == KindNullGuard && err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportOnce forwards at most one error of each kind. Layout algorithms hold
// one per node.
type ReportOnce struct {
	seen map[ErrorKind]bool
}

// Report forwards err unless an error of the same kind went through before.
// It reports whether err was forwarded.
func (o *ReportOnce) Report(err *LayoutError) bool {
	if err == nil || o.seen[err.Kind] {
		return false
	}
	if o.seen == nil {
		o.seen = make(map[ErrorKind]bool)
	}
	o.seen[err.Kind] = true
	Report(err)
	return true
}

// Reported reports whether an error of kind was forwarded.
func (o *ReportOnce) Reported(kind ErrorKind) bool {
	return o.seen[kind]
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in op and lets the caller return normally.
//
//	defer errors.Recover("cmd.measure")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is like Recover and then passes the panic value to
// callback, which typically turns it into the caller's error result.
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
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame. Go runtime frames are left out.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
