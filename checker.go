package envassert

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Enabler decides whether checks are live. Implementations must be safe
// for concurrent use.
type Enabler interface {
	Enabled() bool
}

// EnablerFunc adapts a function to the Enabler interface.
type EnablerFunc func() bool

// Enabled implements Enabler.
func (f EnablerFunc) Enabled() bool {
	return f()
}

// EnvEnabler returns the default strategy: read EnvKey on every call and
// compare it against "true".
//
//nolint:ireturn
func EnvEnabler() Enabler {
	return EnvEnablerFor(EnvKey)
}

// EnvEnablerFor returns an Enabler gated on an arbitrary environment
// variable. The package-level functions always use EnvKey; this exists for
// embedders that cannot share the fixed key.
//
//nolint:ireturn
func EnvEnablerFor(key string) Enabler {
	return EnablerFunc(func() bool {
		return os.Getenv(key) == enabledValue
	})
}

// StaticEnabler returns an Enabler with a fixed answer. Tests use it to
// exercise both paths without mutating the process environment, which is
// racy under parallel tests.
//
//nolint:ireturn
func StaticEnabler(on bool) Enabler {
	return EnablerFunc(func() bool {
		return on
	})
}

// Logger is the minimal logging interface a Checker reports failures
// through before panicking. A nil Logger means failures are silent (the
// panic still carries the message).
type Logger interface {
	Errorf(format string, args ...any)
}

// Checker evaluates env-gated checks with explicit configuration instead
// of the package-level defaults. The zero value and a nil *Checker behave
// exactly like the package-level functions: environment-gated and silent.
type Checker struct {
	enabler   Enabler
	logger    Logger
	component string
}

// New creates a Checker. component labels failures in logs and span
// events; it may be empty. A nil enabler falls back to EnvEnabler.
func New(enabler Enabler, logger Logger, component string) *Checker {
	return &Checker{
		enabler:   enabler,
		logger:    logger,
		component: component,
	}
}

func (checker *Checker) enabled() bool {
	if checker == nil || checker.enabler == nil {
		return Enabled()
	}

	return checker.enabler.Enabled()
}

// Check panics with *AssertionError if the checker is enabled and cond is
// false. ctx is only used to locate a recording span for the failure
// event.
func (checker *Checker) Check(ctx context.Context, cond bool) {
	if cond || !checker.enabled() {
		return
	}

	checker.fail(ctx, "")
}

// CheckMsg is Check with a static message, rendered only on failure.
func (checker *Checker) CheckMsg(ctx context.Context, cond bool, msg any) {
	if cond || !checker.enabled() {
		return
	}

	checker.fail(ctx, fmt.Sprint(msg))
}

// Checkf is Check with a lazily formatted message.
func (checker *Checker) Checkf(ctx context.Context, cond bool, format string, args ...any) {
	if cond || !checker.enabled() {
		return
	}

	checker.fail(ctx, fmt.Sprintf(format, args...))
}

func (checker *Checker) fail(ctx context.Context, msg string) {
	entry := &AssertionError{Message: msg}

	var logger Logger

	component := ""
	if checker != nil {
		logger = checker.logger
		component = checker.component
	}

	if logger != nil {
		if component != "" {
			logger.Errorf("%s: component=%s", entry.Error(), component)
		} else {
			logger.Errorf("%s", entry.Error())
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	recordFailureToSpan(ctx, entry, component)

	panic(entry)
}

// failureSpanEventName is the event name recorded on spans for failed
// checks.
const failureSpanEventName = "envassert.failed"

func recordFailureToSpan(ctx context.Context, entry *AssertionError, component string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.message", entry.Message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("assertion.component", component))
	}

	span.AddEvent(failureSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(entry)
	span.SetStatus(codes.Error, failureStatusMessage(component))
}

func failureStatusMessage(component string) string {
	if component != "" {
		return "assertion failed in " + component
	}

	return "assertion failed"
}
