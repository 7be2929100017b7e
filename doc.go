// Package envassert provides environment-gated runtime assertions.
//
// A check is a sanity assertion that costs one environment lookup and one
// string comparison in normal execution, and only becomes a real assertion
// when the RUST_ENV_ASSERT environment variable is set to the exact string
// "true". Set the variable for a debug session or a test run to turn every
// check site into a fatal assertion; leave it unset in production and the
// checks are no-ops.
//
//	func (q *queue) pop() item {
//	    envassert.Checkf(len(q.items) > 0, "pop on empty queue, head=%d", q.head)
//	    ...
//	}
//
// # Enabling
//
// Only the exact value "true" enables checking. "True", "1", "yes", an
// empty value, or an unset variable all leave checking disabled. The strict
// match is deliberate: a typo in the value disables checks instead of
// silently enabling them in the wrong environment. (Whether alternate
// truthy spellings should count is a known ambiguity in the original
// design; this package keeps the strict behavior.)
//
// The variable is read on every call, so a test harness may toggle it
// between calls. It is still process-wide mutable state: toggling it while
// other goroutines are running checks is racy, with no ordering or
// isolation guarantees. Set it once before spawning concurrent work, or
// use a Checker with an explicit Enabler to take the environment out of
// the picture entirely.
//
// # Failure semantics
//
// A failed enabled check panics with *AssertionError, which unwraps to
// ErrAssertionFailed. This is a fatal assertion, not a recoverable error:
// it is meant to crash the current test or goroutine the way a stock
// assert would, so callers must not treat it as a return value.
//
// The condition expression and any message arguments are evaluated by the
// caller regardless of the variable, as with any Go call. Message
// formatting, however, is lazy: the string is only built when a check is
// both enabled and failing.
package envassert
