package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to a writer (stderr by default).
type LogHandler struct {
	// Verbose enables detailed output including kinds, nodes and stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a LayoutError.
func (h *LogHandler) HandleError(err *LayoutError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[flexlayout error] %s [%s]", err.Op, err.Kind)
		if err.Node != "" {
			fmt.Fprintf(w, " node=%s", err.Node)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[flexlayout error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[flexlayout panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[flexlayout panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
