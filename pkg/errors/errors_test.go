package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestLayoutErrorString(t *testing.T) {
	err := &LayoutError{
		Op:   "flex.Measure",
		Kind: KindNullGuard,
		Err:  stderrors.New("missing layout property"),
	}
	got := err.Error()
	want := "flex.Measure [null_guard]: missing layout property"
	if got != want {
		t.Errorf("LayoutError.Error() = %q, want %q", got, want)
	}
}

func TestLayoutErrorWithNode(t *testing.T) {
	err := &LayoutError{
		Op:   "layout.Measure",
		Kind: KindInvalidInput,
		Node: "Row#3",
		Err:  stderrors.New("negative max width"),
	}
	got := err.Error()
	if !strings.Contains(got, "node=Row#3") {
		t.Errorf("error string %q should contain %q", got, "node=Row#3")
	}
}

func TestLayoutErrorUnwrap(t *testing.T) {
	base := stderrors.New("base")
	err := &LayoutError{Op: "op", Err: base}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindNullGuard, "null_guard"},
		{KindInvalidInput, "invalid_input"},
		{KindOverflow, "overflow"},
		{KindConfig, "config"},
		{KindScene, "scene"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "cmd.measure"
	if got, want := err.Error(), "panic in cmd.measure: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *LayoutError
	handler := &testHandler{onError: func(err *LayoutError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&LayoutError{Op: "test.op", Kind: KindOverflow, Err: stderrors.New("too wide")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(*LayoutError) { called = true }})
	defer SetHandler(oldHandler)

	Report(nil)
	if called {
		t.Error("Report(nil) should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&LayoutError{Op: "flex.Measure", Kind: KindOverflow, Node: "Row#0", Err: stderrors.New("boom")})
	if got, want := buf.String(), "[flexlayout error] flex.Measure: boom\n"; got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&LayoutError{Op: "flex.Measure", Kind: KindOverflow, Node: "Row#0", Err: stderrors.New("boom")})
	if got := buf.String(); !strings.Contains(got, "[overflow] node=Row#0") {
		t.Errorf("verbose log line = %q, want kind and node", got)
	}
}

type testHandler struct {
	onError func(*LayoutError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *LayoutError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestReportOnce(t *testing.T) {
	var got []ErrorKind
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *LayoutError) { got = append(got, err.Kind) }})
	defer SetHandler(oldHandler)

	var once ReportOnce
	for range 3 {
		once.Report(&LayoutError{Op: "flex.Measure", Kind: KindOverflow, Err: stderrors.New("overflow")})
	}
	if !once.Report(&LayoutError{Op: "flex.Measure", Kind: KindInvalidInput, Err: stderrors.New("unbounded")}) {
		t.Error("first error of a new kind was not forwarded")
	}
	if once.Report(nil) {
		t.Error("Report(nil) forwarded")
	}
	if len(got) != 2 || got[0] != KindOverflow || got[1] != KindInvalidInput {
		t.Errorf("forwarded kinds = %v, want [overflow invalid_input]", got)
	}
	if !once.Reported(KindOverflow) || once.Reported(KindNullGuard) {
		t.Error("Reported does not match the forwarded kinds")
	}
}

func TestReport_NullGuardStack(t *testing.T) {
	var captured []*LayoutError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *LayoutError) { captured = append(captured, err) }})
	defer SetHandler(oldHandler)

	Report(&LayoutError{Op: "layout.Measure", Kind: KindNullGuard, Err: stderrors.New("missing layout algorithm")})
	Report(&LayoutError{Op: "flex.Measure", Kind: KindOverflow, Err: stderrors.New("overflow")})
	if len(captured) != 2 {
		t.Fatalf("captured %d errors, want 2", len(captured))
	}
	if !strings.Contains(captured[0].StackTrace, "TestReport_NullGuardStack") {
		t.Errorf("null guard stack = %q, want the reporting test frame", captured[0].StackTrace)
	}
	if captured[1].StackTrace != "" {
		t.Errorf("overflow stack = %q, want none", captured[1].StackTrace)
	}
}
