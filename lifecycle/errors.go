package lifecycle

import "github.com/cockroachdb/errors"

var (
	ErrWindowingInit     = errors.New("failed to initialize windowing subsystem")
	ErrWindowCreate      = errors.New("failed to create window")
	ErrInstanceCreate    = errors.New("failed to create vulkan instance")
	ErrAlreadyRun        = errors.New("application has already run")
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)

// fail wraps cause with a phase message and marks it with the sentinel for that phase,
// so callers can classify it with errors.Is while still printing the underlying cause.
func fail(cause error, sentinel error, phase string) error {
	if cause == nil {
		return sentinel
	}
	return errors.Mark(errors.Wrapf(cause, "%s: %s", phase, sentinel), sentinel)
}
