package envassert

import (
	"errors"
	"fmt"
	"os"
)

// EnvKey is the environment variable that gates checking. Only the exact
// value "true" enables it.
const EnvKey = "RUST_ENV_ASSERT"

// enabledValue is the only value of EnvKey that turns checks on.
const enabledValue = "true"

// ErrAssertionFailed is the sentinel error for failed checks.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError is the panic value of a failed enabled check.
// Message is exactly the message supplied at the check site, or "" for a
// bare Check.
type AssertionError struct {
	Message string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil || entry.Message == "" {
		return ErrAssertionFailed.Error()
	}

	return "assertion failed: " + entry.Message
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Enabled reports whether checking is currently on. The environment is
// consulted on every call; nothing is cached.
func Enabled() bool {
	return os.Getenv(EnvKey) == enabledValue
}

// Check panics with *AssertionError if checking is enabled and cond is
// false. Otherwise it does nothing.
func Check(cond bool) {
	if cond || !Enabled() {
		return
	}

	panic(&AssertionError{})
}

// CheckMsg is Check with a static message. The message is only rendered
// when the check is enabled and failing.
func CheckMsg(cond bool, msg any) {
	if cond || !Enabled() {
		return
	}

	panic(&AssertionError{Message: fmt.Sprint(msg)})
}

// Checkf is Check with a lazily formatted message.
func Checkf(cond bool, format string, args ...any) {
	if cond || !Enabled() {
		return
	}

	panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
}
